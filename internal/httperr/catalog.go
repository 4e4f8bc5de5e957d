package httperr

import "net/http"

type entry struct {
	Status  int
	Message string
}

var catalog = map[string]entry{
	// -------- validation --------
	"invalid_request":   {http.StatusBadRequest, "اطلاعات ارسال‌شده نامعتبر است."},
	"missing_date":      {http.StatusBadRequest, "تاریخ و ساعت جلسه الزامی است."},
	"missing_id":        {http.StatusBadRequest, "شناسه الزامی است."},
	"invalid_id":        {http.StatusBadRequest, "شناسه نامعتبر است."},
	"missing_slot_id":   {http.StatusBadRequest, "انتخاب زمان جلسه الزامی است."},
	"invalid_phone":     {http.StatusBadRequest, "شماره موبایل نامعتبر است."},
	"invalid_type":      {http.StatusBadRequest, "نوع انتخاب‌شده نامعتبر است."},
	"slot_expired":      {http.StatusBadRequest, "زمان این جلسه گذشته است."},
	"missing_params":    {http.StatusBadRequest, "نام فایل و نوع فایل الزامی است."},
	"missing_tracking":  {http.StatusBadRequest, "کد پیگیری پرداخت الزامی است."},
	"amount_mismatch":   {http.StatusBadRequest, "مبلغ پرداخت با قیمت محتوا مطابقت ندارد."},
	"not_for_sale":      {http.StatusBadRequest, "این محتوا رایگان است و نیازی به پرداخت ندارد."},
	"invalid_status":    {http.StatusBadRequest, "وضعیت انتخاب‌شده نامعتبر است."},
	"invalid_username":  {http.StatusBadRequest, "نام کاربری نامعتبر است."},
	"weak_password":     {http.StatusBadRequest, "رمز عبور باید حداقل ۶ کاراکتر باشد."},
	"username_taken":    {http.StatusBadRequest, "این نام کاربری قبلاً ثبت شده است."},
	"invalid_action":    {http.StatusBadRequest, "عملیات درخواستی نامعتبر است."},
	"missing_title":     {http.StatusBadRequest, "عنوان محتوا الزامی است."},
	"invalid_price":     {http.StatusBadRequest, "قیمت نامعتبر است."},
	"missing_media_key": {http.StatusBadRequest, "برای این محتوا فایلی ثبت نشده است."},
	"invalid_level":     {http.StatusBadRequest, "سطح زبان انتخاب‌شده نامعتبر است."},

	// -------- auth --------
	"unauthorized":        {http.StatusUnauthorized, "لطفاً ابتدا وارد حساب کاربری شوید."},
	"invalid_token":       {http.StatusUnauthorized, "نشست شما نامعتبر یا منقضی شده است."},
	"invalid_credentials": {http.StatusUnauthorized, "نام کاربری یا رمز عبور اشتباه است."},
	"forbidden":           {http.StatusForbidden, "شما به این بخش دسترسی ندارید."},
	"purchase_required":   {http.StatusForbidden, "برای مشاهده این محتوا ابتدا باید آن را خریداری کنید."},

	// -------- not found --------
	"slot_not_found":    {http.StatusNotFound, "زمان انتخاب‌شده یافت نشد."},
	"content_not_found": {http.StatusNotFound, "محتوای موردنظر یافت نشد."},
	"payment_not_found": {http.StatusNotFound, "پرداخت موردنظر یافت نشد."},
	"user_not_found":    {http.StatusNotFound, "کاربر یافت نشد."},

	// -------- conflict --------
	"slot_already_booked": {http.StatusConflict, "این زمان قبلاً رزرو شده است."},
	"slot_has_booking":    {http.StatusConflict, "این زمان رزرو دارد و قابل حذف نیست."},
	"invalid_transition":  {http.StatusConflict, "تغییر وضعیت این پرداخت امکان‌پذیر نیست."},
	"content_in_use":      {http.StatusConflict, "برای این محتوا پرداخت ثبت شده و قابل حذف نیست."},

	// -------- infra --------
	"storage_unavailable": {http.StatusServiceUnavailable, "سرویس ذخیره‌سازی در دسترس نیست."},
	"internal_error":      {http.StatusInternalServerError, "خطای داخلی رخ داد. لطفاً دوباره تلاش کنید."},
}

// Lookup resolves a code. Unknown codes are treated as validation errors.
func Lookup(code string) (int, string) {
	if e, ok := catalog[code]; ok {
		return e.Status, e.Message
	}
	return http.StatusBadRequest, catalog["invalid_request"].Message
}
