// Package memrepo holds in-memory repositories for use case and handler
// tests. Every conditional write runs under one mutex so compare-and-set
// semantics match the SQL implementations.
package memrepo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	bookingDomain "github.com/BruksfildServices01/zaban-academy/internal/domain/booking"
	contentDomain "github.com/BruksfildServices01/zaban-academy/internal/domain/content"
	paymentDomain "github.com/BruksfildServices01/zaban-academy/internal/domain/payment"
	userDomain "github.com/BruksfildServices01/zaban-academy/internal/domain/user"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

type Store struct {
	mu     sync.Mutex
	nextID uint

	slots     map[uint]models.TimeSlot
	bookings  map[uint]models.Booking
	contents  map[uint]models.Content
	payments  map[uint]models.Payment
	purchases map[uint]models.Purchase
	users     map[uint]models.User

	Bookings *BookingRepo
	Payments *PaymentRepo
	Contents *ContentRepo
	Users    *UserRepo
}

func New() *Store {
	s := &Store{
		slots:     map[uint]models.TimeSlot{},
		bookings:  map[uint]models.Booking{},
		contents:  map[uint]models.Content{},
		payments:  map[uint]models.Payment{},
		purchases: map[uint]models.Purchase{},
		users:     map[uint]models.User{},
	}
	s.Bookings = &BookingRepo{s: s}
	s.Payments = &PaymentRepo{s: s}
	s.Contents = &ContentRepo{s: s}
	s.Users = &UserRepo{s: s}
	return s
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// BookingCount returns how many bookings reference slotID.
func (s *Store) BookingCount(slotID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.bookings {
		if b.SlotID == slotID {
			n++
		}
	}
	return n
}

// PurchaseCount returns how many purchases were created for paymentID.
func (s *Store) PurchaseCount(paymentID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, p := range s.purchases {
		if p.PaymentID != nil && *p.PaymentID == paymentID {
			n++
		}
	}
	return n
}

// Slot returns a copy of the stored slot.
func (s *Store) Slot(id uint) (models.TimeSlot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[id]
	return slot, ok
}

// ======================================================
// Booking
// ======================================================

type BookingRepo struct{ s *Store }

func (r *BookingRepo) ListAvailableSlots(_ context.Context, now time.Time) ([]models.TimeSlot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []models.TimeSlot{}
	for _, slot := range r.s.slots {
		if !slot.IsBooked && !slot.StartAt.Before(now) {
			out = append(out, slot)
		}
	}
	sortSlots(out)
	return out, nil
}

func (r *BookingRepo) ListSlots(context.Context) ([]models.TimeSlot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]models.TimeSlot, 0, len(r.s.slots))
	for _, slot := range r.s.slots {
		out = append(out, slot)
	}
	sortSlots(out)
	return out, nil
}

func (r *BookingRepo) CreateSlot(_ context.Context, slot *models.TimeSlot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	slot.ID = r.s.id()
	slot.CreatedAt = time.Now()
	r.s.slots[slot.ID] = *slot
	return nil
}

func (r *BookingRepo) DeleteSlot(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.slots[id]; !ok {
		return httperr.ErrBusiness("slot_not_found")
	}
	for _, b := range r.s.bookings {
		if b.SlotID == id {
			return httperr.ErrBusiness("slot_has_booking")
		}
	}
	delete(r.s.slots, id)
	return nil
}

func (r *BookingRepo) ClaimSlot(_ context.Context, b *models.Booking, now time.Time) (*models.TimeSlot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	slot, ok := r.s.slots[b.SlotID]
	if !ok {
		return nil, httperr.ErrBusiness("slot_not_found")
	}
	if slot.IsBooked {
		return nil, httperr.ErrBusiness("slot_already_booked")
	}
	if slot.StartAt.Before(now) {
		return nil, httperr.ErrBusiness("slot_expired")
	}

	slot.IsBooked = true
	r.s.slots[slot.ID] = slot

	b.ID = r.s.id()
	b.Date = slot.StartAt
	b.CreatedAt = time.Now()
	b.Slot = slot
	r.s.bookings[b.ID] = *b

	return &slot, nil
}

func (r *BookingRepo) ListBookings(context.Context) ([]models.Booking, error) {
	return r.list(func(models.Booking) bool { return true }), nil
}

func (r *BookingRepo) ListBookingsForUser(_ context.Context, userID uint) ([]models.Booking, error) {
	return r.list(func(b models.Booking) bool {
		return b.UserID != nil && *b.UserID == userID
	}), nil
}

func (r *BookingRepo) list(keep func(models.Booking) bool) []models.Booking {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []models.Booking{}
	for _, b := range r.s.bookings {
		if keep(b) {
			b.Slot = r.s.slots[b.SlotID]
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// ======================================================
// Payment
// ======================================================

type PaymentRepo struct{ s *Store }

func (r *PaymentRepo) GetContent(ctx context.Context, id uint) (*models.Content, error) {
	return r.s.Contents.Get(ctx, id)
}

func (r *PaymentRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = r.s.id()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.s.payments[p.ID] = *p
	return nil
}

func (r *PaymentRepo) ListPayments(_ context.Context, f paymentDomain.ListFilter) ([]models.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []models.Payment{}
	for _, p := range r.s.payments {
		if f.Status != "" && p.Status != string(f.Status) {
			continue
		}
		if f.UserID != 0 && p.UserID != f.UserID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *PaymentRepo) Transition(
	_ context.Context,
	id uint,
	to paymentDomain.Status,
	notes string,
) (*models.Payment, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.payments[id]
	if !ok {
		return nil, false, httperr.ErrBusiness("payment_not_found")
	}

	changed := false
	if p.Status == string(paymentDomain.StatusPending) {
		p.Status = string(to)
		p.AdminNotes = notes
		p.UpdatedAt = time.Now()
		r.s.payments[id] = p
		changed = true
	} else if err := paymentDomain.CanTransition(paymentDomain.Status(p.Status), to); err != nil {
		return nil, false, err
	}

	if paymentDomain.GrantsEntitlement(to) {
		exists := false
		for _, pu := range r.s.purchases {
			if pu.PaymentID != nil && *pu.PaymentID == id {
				exists = true
				break
			}
		}
		if !exists {
			pid := id
			purchase := models.Purchase{
				ID:        r.s.id(),
				UserID:    p.UserID,
				ContentID: p.ContentID,
				PaymentID: &pid,
				CreatedAt: time.Now(),
			}
			r.s.purchases[purchase.ID] = purchase
		}
	}

	return &p, changed, nil
}

// ======================================================
// Content
// ======================================================

type ContentRepo struct{ s *Store }

func (r *ContentRepo) List(context.Context) ([]models.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]models.Content, 0, len(r.s.contents))
	for _, c := range r.s.contents {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *ContentRepo) Get(_ context.Context, id uint) (*models.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.contents[id]
	if !ok {
		return nil, httperr.ErrBusiness("content_not_found")
	}
	return &c, nil
}

func (r *ContentRepo) Create(_ context.Context, c *models.Content) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if c.ID == 0 {
		c.ID = r.s.id()
	} else if c.ID > r.s.nextID {
		r.s.nextID = c.ID
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.s.contents[c.ID] = *c
	return nil
}

func (r *ContentRepo) Update(_ context.Context, c *models.Content) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	old, ok := r.s.contents[c.ID]
	if !ok {
		return httperr.ErrBusiness("content_not_found")
	}
	c.CreatedAt = old.CreatedAt
	c.UpdatedAt = time.Now()
	r.s.contents[c.ID] = *c
	return nil
}

func (r *ContentRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.contents[id]; !ok {
		return httperr.ErrBusiness("content_not_found")
	}
	for _, p := range r.s.payments {
		if p.ContentID == id {
			return httperr.ErrBusiness("content_in_use")
		}
	}
	delete(r.s.contents, id)
	return nil
}

func (r *ContentRepo) HasPurchase(_ context.Context, userID, contentID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.purchases {
		if p.UserID == userID && p.ContentID == contentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *ContentRepo) ListPurchases(_ context.Context, userID uint) ([]models.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []models.Purchase{}
	for _, p := range r.s.purchases {
		if p.UserID == userID {
			p.Content = r.s.contents[p.ContentID]
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// ======================================================
// User
// ======================================================

type UserRepo struct{ s *Store }

func (r *UserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, httperr.ErrBusiness("user_not_found")
}

func (r *UserRepo) Create(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return httperr.ErrBusiness("username_taken")
		}
	}
	if u.Role == "" {
		u.Role = auth.RoleUser
	}
	u.ID = r.s.id()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) UpdateProfile(_ context.Context, id uint, in userDomain.ProfileUpdate) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Avatar != nil {
		u.Avatar = *in.Avatar
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.Level != nil {
		u.Level = *in.Level
	}
	u.UpdatedAt = time.Now()
	r.s.users[id] = u
	return &u, nil
}

func (r *UserRepo) ListAll(context.Context) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepo) PromoteToAdmin(_ context.Context, id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok || strings.EqualFold(u.Role, auth.RoleAdmin) {
		return false, nil
	}
	u.Role = auth.RoleAdmin
	r.s.users[id] = u
	return true, nil
}

func sortSlots(slots []models.TimeSlot) {
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].StartAt.Equal(slots[j].StartAt) {
			return slots[i].ID < slots[j].ID
		}
		return slots[i].StartAt.Before(slots[j].StartAt)
	})
}

var (
	_ bookingDomain.Repository = (*BookingRepo)(nil)
	_ paymentDomain.Repository = (*PaymentRepo)(nil)
	_ contentDomain.Repository = (*ContentRepo)(nil)
	_ userDomain.Repository    = (*UserRepo)(nil)
)
