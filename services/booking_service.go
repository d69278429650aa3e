package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"fms-app/config"
	"fms-app/controllers/idgen"
	"fms-app/documents"
	"fms-app/events"
	"fms-app/fms/booking"
	"fms-app/fms/cargo"
	"fms-app/fms/listing"
	"fms-app/models"
	"fms-app/notify"
	"fms-app/repositories"
	"fms-app/types"
	"fms-app/utils"

	"github.com/gofiber/fiber/v2/log"
)

const dateLayout = "2006-01-02"

// BookingStore is implemented by the gorm and in-memory repositories.
type BookingStore interface {
	Create(ctx context.Context, b booking.Booking, actor int) error
	CreateMany(ctx context.Context, bs []booking.Booking, actor int) error
	Update(ctx context.Context, b *booking.Booking, actor int) error
	Get(ctx context.Context, id types.SnowflakeID) (booking.Booking, error)
	List(ctx context.Context, q repositories.BookingQuery) ([]booking.Booking, error)
	Delete(ctx context.Context, ids []types.SnowflakeID, actor int) error
	AppendHistory(ctx context.Context, entry models.TransactionHistory) error
	History(ctx context.Context, id types.SnowflakeID) ([]models.TransactionHistory, error)
	NextNumber(ctx context.Context, prefix string, year int) (string, error)
}

type BookingService struct {
	store  BookingStore
	calc   cargo.Calculator
	events events.Publisher
	mailer notify.Mailer
	locks  *keyedLocker

	Timeout      time.Duration
	SRRecipients []string
	Now          func() time.Time
}

func NewBookingService(store BookingStore, calc cargo.Calculator, publisher events.Publisher, mailer notify.Mailer) *BookingService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if mailer == nil {
		mailer = notify.NopMailer{}
	}
	timeout := config.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &BookingService{
		store:        store,
		calc:         calc,
		events:       publisher,
		mailer:       mailer,
		locks:        newKeyedLocker(),
		Timeout:      timeout,
		SRRecipients: config.SRNotifyEmails,
		Now:          time.Now,
	}
}

// ListQuery narrows, orders and pages the booking list.
type ListQuery struct {
	Mode    cargo.Mode
	Status  booking.Status
	Filters listing.Filters
	Sort    listing.SortSpec
	Page    int
	Size    int
}

func (s *BookingService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.Timeout)
}

func (s *BookingService) today() string {
	return s.Now().Format(dateLayout)
}

func (s *BookingService) Calculator() cargo.Calculator {
	return s.calc
}

// Create stores a new draft. Drafts may be incomplete; the returned result lists
// what still blocks submission.
func (s *BookingService) Create(ctx context.Context, in booking.Booking, actor int) (booking.Booking, booking.ValidationResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	b, err := s.create(ctx, in, actor)
	if err != nil {
		return booking.Booking{}, booking.ValidationResult{}, err
	}
	return b, booking.ValidateBooking(b), nil
}

func (s *BookingService) create(ctx context.Context, in booking.Booking, actor int) (booking.Booking, error) {
	b := s.draft(in)

	prefix := repositories.BookingPrefix(b.Mode)
	unlock, err := s.locks.Lock(ctx, "number:"+prefix)
	if err != nil {
		return booking.Booking{}, err
	}
	defer unlock()

	no, err := s.store.NextNumber(ctx, prefix, s.Now().Year())
	if err != nil {
		return booking.Booking{}, err
	}
	b.BookingNo = no

	if err := s.store.Create(ctx, b, actor); err != nil {
		log.Errorw("create booking failed", "booking_no", no, "error", err)
		return booking.Booking{}, err
	}

	s.record(ctx, b, "create", "", actor, "booking registered")
	return b, nil
}

// createAll numbers and stores drafts of one mode in a single store call.
func (s *BookingService) createAll(ctx context.Context, mode cargo.Mode, ins []booking.Booking, actor int) ([]booking.Booking, error) {
	drafts := make([]booking.Booking, len(ins))
	for i, in := range ins {
		in.Mode = mode
		drafts[i] = s.draft(in)
	}

	prefix := repositories.BookingPrefix(mode)
	unlock, err := s.locks.Lock(ctx, "number:"+prefix)
	if err != nil {
		return nil, err
	}
	defer unlock()

	year := s.Now().Year()
	no, err := s.store.NextNumber(ctx, prefix, year)
	if err != nil {
		return nil, err
	}
	for i := range drafts {
		if i > 0 {
			no = repositories.NumberAfter(no, prefix, year)
		}
		drafts[i].BookingNo = no
	}

	if err := s.store.CreateMany(ctx, drafts, actor); err != nil {
		log.Errorw("create bookings failed", "count", len(drafts), "first", drafts[0].BookingNo, "error", err)
		return nil, err
	}
	for _, b := range drafts {
		s.record(ctx, b, "create", "", actor, "booking registered")
	}
	return drafts, nil
}

// draft resets everything the caller may not set on a new booking.
func (s *BookingService) draft(in booking.Booking) booking.Booking {
	b := in.Clone()
	b.Status = ""
	b = b.ApplyDefaults()
	b.ID = idgen.Generate()
	b.Version = 1
	b.RequestedDate, b.BCNo, b.BCDate, b.SRNo, b.SRDate = "", "", "", "", ""
	b.ShippingRequest = nil
	if strings.TrimSpace(b.BookingDate) == "" {
		b.BookingDate = s.today()
	}
	return booking.Recompute(b, s.calc)
}

func (s *BookingService) Get(ctx context.Context, id types.SnowflakeID) (booking.Booking, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.store.Get(ctx, id)
}

// Search returns the filtered and sorted list without paging.
func (s *BookingService) Search(ctx context.Context, q ListQuery) ([]booking.Booking, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	all, err := s.store.List(ctx, repositories.BookingQuery{Mode: q.Mode, Status: q.Status})
	if err != nil {
		return nil, err
	}
	return listing.SortRecords(listing.FilterRecords(all, q.Filters), q.Sort), nil
}

func (s *BookingService) List(ctx context.Context, q ListQuery) (listing.Page[booking.Booking], error) {
	rows, err := s.Search(ctx, q)
	if err != nil {
		return listing.Page[booking.Booking]{}, err
	}
	return listing.Paginate(rows, q.Page, q.Size), nil
}

func (s *BookingService) Export(ctx context.Context, q ListQuery) ([]byte, error) {
	rows, err := s.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return documents.ExportBookings(rows)
}

// Update edits a draft or requested booking. Versions start at 1; a non-zero
// changes.Version must match the stored one.
func (s *BookingService) Update(ctx context.Context, id types.SnowflakeID, changes booking.Booking, actor int) (booking.Booking, error) {
	return s.mutate(ctx, id, booking.ActionEdit, actor, booking.TransitionContext{Changes: &changes}, nil)
}

func (s *BookingService) Submit(ctx context.Context, id types.SnowflakeID, actor int) (booking.Booking, error) {
	return s.mutate(ctx, id, booking.ActionSubmit, actor, booking.TransitionContext{RequestedDate: s.today()}, nil)
}

// Confirm issues the B/C number.
func (s *BookingService) Confirm(ctx context.Context, id types.SnowflakeID, actor int) (booking.Booking, error) {
	return s.mutate(ctx, id, booking.ActionConfirm, actor, booking.TransitionContext{}, &numberIssue{
		prefix: repositories.PrefixConfirmation,
		apply: func(tc *booking.TransitionContext, no, date string) {
			tc.BCNo, tc.BCDate = no, date
		},
	})
}

func (s *BookingService) Reject(ctx context.Context, id types.SnowflakeID, actor int) (booking.Booking, error) {
	return s.mutate(ctx, id, booking.ActionReject, actor, booking.TransitionContext{}, nil)
}

func (s *BookingService) Cancel(ctx context.Context, id types.SnowflakeID, actor int) (booking.Booking, error) {
	return s.mutate(ctx, id, booking.ActionCancel, actor, booking.TransitionContext{}, nil)
}

// SendShippingRequest issues the S/R number, stores the S/R and mails it with the PDF attached.
func (s *BookingService) SendShippingRequest(ctx context.Context, id types.SnowflakeID, sr booking.ShippingRequest, actor int) (booking.Booking, error) {
	b, err := s.mutate(ctx, id, booking.ActionSendSR, actor, booking.TransitionContext{ShippingRequest: sr}, &numberIssue{
		prefix: repositories.PrefixShippingRequest,
		apply: func(tc *booking.TransitionContext, no, date string) {
			tc.SRNo, tc.SRDate = no, date
		},
	})
	if err != nil {
		return b, err
	}

	s.mailShippingRequest(b)
	return b, nil
}

// ShippingRequestForm returns the S/R form for a booking with the usual defaults filled in.
func (s *BookingService) ShippingRequestForm(ctx context.Context, id types.SnowflakeID) (booking.ShippingRequest, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return booking.ShippingRequest{}, err
	}
	sr := booking.ShippingRequest{}
	if b.ShippingRequest != nil {
		sr = *b.ShippingRequest
	}
	return sr.WithDefaults(b), nil
}

func (s *BookingService) mailShippingRequest(b booking.Booking) {
	to := []string{}
	seen := map[string]bool{}
	candidates := append([]string{}, s.SRRecipients...)
	if b.ShippingRequest != nil {
		candidates = append([]string{b.ShippingRequest.ContactEmail}, candidates...)
	}
	for _, addr := range candidates {
		addr = strings.TrimSpace(addr)
		if addr == "" || seen[strings.ToLower(addr)] {
			continue
		}
		seen[strings.ToLower(addr)] = true
		to = append(to, addr)
	}
	if len(to) == 0 {
		return
	}

	pdf, filename, err := documents.ShippingRequestPDF(b)
	if err != nil {
		log.Errorw("render S/R pdf failed", "sr_no", b.SRNo, "error", err)
	}
	if err := s.mailer.Send(notify.ShippingRequestMail(b, to, pdf, filename)); err != nil {
		log.Errorw("send S/R mail failed", "sr_no", b.SRNo, "to", to, "error", err)
		return
	}
	utils.LogEvent("booking", "sr_mailed", "sr_no", b.SRNo, "recipients", len(to))
}

// numberIssue draws a document number for an action once the action is known to be legal.
type numberIssue struct {
	prefix string
	apply  func(tc *booking.TransitionContext, no, date string)
}

// mutate runs one lifecycle action under the booking's lock. When the action
// issues a number, a dry run comes first so rejected actions draw nothing, and
// the number lock is held until the update is stored.
func (s *BookingService) mutate(ctx context.Context, id types.SnowflakeID, action booking.Action, actor int,
	tc booking.TransitionContext, issue *numberIssue) (booking.Booking, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	unlock, err := s.locks.Lock(ctx, "booking:"+id.String())
	if err != nil {
		return booking.Booking{}, err
	}
	defer unlock()

	cur, err := s.store.Get(ctx, id)
	if err != nil {
		return booking.Booking{}, err
	}
	if tc.Changes != nil && tc.Changes.Version != 0 && tc.Changes.Version != cur.Version {
		return cur, ErrVersionConflict
	}
	tc.Calculator = s.calc

	if issue != nil {
		if _, err := booking.Transition(cur, action, tc); err != nil {
			return cur, err
		}
		release, err := s.locks.Lock(ctx, "number:"+issue.prefix)
		if err != nil {
			return cur, err
		}
		defer release()

		no, err := s.store.NextNumber(ctx, issue.prefix, s.Now().Year())
		if err != nil {
			return cur, err
		}
		issue.apply(&tc, no, s.today())
	}

	from := cur.Status
	next, err := booking.Transition(cur, action, tc)
	if err != nil {
		return cur, err
	}
	if err := s.store.Update(ctx, &next, actor); err != nil {
		if errors.Is(err, ErrVersionConflict) {
			log.Warnw("booking version conflict", "booking_no", cur.BookingNo, "action", action)
		}
		return cur, err
	}

	s.record(ctx, next, string(action), from, actor, detailFor(action, next))
	return next, nil
}

func detailFor(action booking.Action, b booking.Booking) string {
	switch action {
	case booking.ActionConfirm:
		return "B/C " + b.BCNo
	case booking.ActionSendSR:
		return "S/R " + b.SRNo
	case booking.ActionSubmit:
		return "requested " + b.RequestedDate
	}
	return ""
}

// record writes the history row and the status event. Neither failure undoes the stored booking.
func (s *BookingService) record(ctx context.Context, b booking.Booking, action string, from booking.Status, actor int, detail string) {
	if err := s.store.AppendHistory(ctx, models.TransactionHistory{
		RefID:     b.ID,
		RefNo:     b.BookingNo,
		Status:    string(b.Status),
		Type:      action,
		Detail:    detail,
		CreatedBy: actor,
	}); err != nil {
		log.Errorw("append booking history failed", "booking_no", b.BookingNo, "action", action, "error", err)
	}

	ev := events.StatusChanged{
		Type:      events.TypeStatusChanged,
		BookingID: b.ID.String(),
		BookingNo: b.BookingNo,
		Action:    action,
		From:      string(from),
		To:        string(b.Status),
		Actor:     actor,
		At:        s.Now(),
	}
	if err := s.events.Publish(ctx, ev.BookingID, ev); err != nil {
		log.Errorw("publish booking event failed", "booking_no", b.BookingNo, "action", action, "error", err)
	}

	utils.LogEvent("booking", action, "booking_no", b.BookingNo, "from", from, "to", b.Status, "actor", actor)
}

// Delete soft-deletes bookings. The whole call fails when any id is missing or confirmed.
func (s *BookingService) Delete(ctx context.Context, ids []types.SnowflakeID, actor int) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	targets := make([]booking.Booking, 0, len(ids))
	for _, id := range ids {
		b, err := s.store.Get(ctx, id)
		if err != nil {
			return err
		}
		if b.Status == booking.StatusConfirmed {
			return fmt.Errorf("%w: %s", ErrConfirmedDelete, b.BookingNo)
		}
		targets = append(targets, b)
	}

	if err := s.store.Delete(ctx, ids, actor); err != nil {
		return err
	}
	for _, b := range targets {
		s.record(ctx, b, "delete", b.Status, actor, "deleted")
	}
	return nil
}

func (s *BookingService) History(ctx context.Context, id types.SnowflakeID) ([]models.TransactionHistory, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.store.History(ctx, id)
}

func (s *BookingService) Timeline(ctx context.Context, id types.SnowflakeID) ([]booking.TimelineEvent, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return booking.Timeline(b), nil
}

// ConfirmationPDF renders the B/C of a confirmed booking.
func (s *BookingService) ConfirmationPDF(ctx context.Context, id types.SnowflakeID) ([]byte, string, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if b.BCNo == "" {
		return nil, "", ErrDocumentUnavailable
	}
	return documents.BookingConfirmationPDF(b)
}

func (s *BookingService) ShippingRequestPDF(ctx context.Context, id types.SnowflakeID) ([]byte, string, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if b.SRNo == "" {
		return nil, "", ErrDocumentUnavailable
	}
	return documents.ShippingRequestPDF(b)
}

// Recompute runs the dimensions calculator without touching any booking.
func (s *BookingService) Recompute(lines []cargo.Line, mode cargo.Mode) ([]cargo.Line, cargo.Totals) {
	if !mode.Valid() {
		mode = cargo.ModeSea
	}
	out := s.calc.RecomputeAll(lines, mode)
	return out, cargo.Aggregate(out)
}

// ImportBatch parses an uploaded workbook and registers its valid rows.
func (s *BookingService) ImportBatch(ctx context.Context, r io.Reader, actor int) (BatchResult, error) {
	file, err := documents.ParseBatchWorkbook(r)
	if err != nil {
		return BatchResult{}, err
	}
	return s.CreateBatch(ctx, BatchInput{Mode: file.Mode, Schedule: file.Schedule, Rows: file.Rows}, actor)
}
