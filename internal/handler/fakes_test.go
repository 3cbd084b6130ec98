package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/model"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/payment"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/queue"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/repository"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/utils"
)

// ----- stores -----

var errDBDown = fmt.Errorf("db down")

type fakeEventStore struct {
	events    map[string]model.Event
	created   []model.Event
	createErr error
	updates   []repository.EventUpdate
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: map[string]model.Event{}}
}

func (s *fakeEventStore) Create(_ context.Context, e model.Event) (model.Event, error) {
	if s.createErr != nil {
		return model.Event{}, s.createErr
	}
	e.ID = primitive.NewObjectID()
	s.events[e.ID.Hex()] = e
	s.created = append(s.created, e)
	return e, nil
}

func (s *fakeEventStore) List(context.Context) ([]model.Event, error) {
	out := []model.Event{}
	for _, e := range s.events {
		out = append(out, e)
	}
	return out, nil
}

func (s *fakeEventStore) GetByID(_ context.Context, id string) (model.Event, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return model.Event{}, repository.ErrInvalidID
	}
	e, ok := s.events[id]
	if !ok {
		return model.Event{}, repository.ErrNotFound
	}
	return e, nil
}

func (s *fakeEventStore) Update(_ context.Context, id string, upd repository.EventUpdate) (model.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return model.Event{}, repository.ErrNotFound
	}
	s.updates = append(s.updates, upd)
	if upd.Name != nil {
		e.Name = *upd.Name
	}
	if upd.Date != nil {
		e.Date = *upd.Date
	}
	if upd.Venue != nil {
		e.Venue = *upd.Venue
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.Photos != nil {
		e.Photos = *upd.Photos
	}
	s.events[id] = e
	return e, nil
}

func (s *fakeEventStore) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	if _, ok := s.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.events, id)
	return nil
}

type fakeTeamStore struct {
	members   map[string]model.TeamMember
	createErr error
	reordered []repository.OrderUpdate
}

func newFakeTeamStore() *fakeTeamStore {
	return &fakeTeamStore{members: map[string]model.TeamMember{}}
}

func (s *fakeTeamStore) Create(_ context.Context, m model.TeamMember) (model.TeamMember, error) {
	if s.createErr != nil {
		return model.TeamMember{}, s.createErr
	}
	m.ID = primitive.NewObjectID()
	s.members[m.ID.Hex()] = m
	return m, nil
}

func (s *fakeTeamStore) List(context.Context) ([]model.TeamMember, error) {
	out := []model.TeamMember{}
	for _, m := range s.members {
		out = append(out, m)
	}
	return out, nil
}

func (s *fakeTeamStore) GetByID(_ context.Context, id string) (model.TeamMember, error) {
	m, ok := s.members[id]
	if !ok {
		return model.TeamMember{}, repository.ErrNotFound
	}
	return m, nil
}

func (s *fakeTeamStore) Update(_ context.Context, id string, upd repository.TeamUpdate) (model.TeamMember, error) {
	m, ok := s.members[id]
	if !ok {
		return model.TeamMember{}, repository.ErrNotFound
	}
	if upd.Name != nil {
		m.Name = *upd.Name
	}
	if upd.Position != nil {
		m.Position = *upd.Position
	}
	if upd.Description != nil {
		m.Description = *upd.Description
	}
	if upd.Image != nil {
		m.Image = *upd.Image
	}
	if upd.Order != nil {
		m.Order = *upd.Order
	}
	s.members[id] = m
	return m, nil
}

func (s *fakeTeamStore) Delete(_ context.Context, id string) error {
	if _, ok := s.members[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.members, id)
	return nil
}

func (s *fakeTeamStore) Reorder(_ context.Context, updates []repository.OrderUpdate) error {
	for _, u := range updates {
		if _, err := primitive.ObjectIDFromHex(u.ID); err != nil {
			return repository.ErrInvalidID
		}
	}
	s.reordered = append(s.reordered, updates...)
	for _, u := range updates {
		if m, ok := s.members[u.ID]; ok {
			m.Order = u.Order
			s.members[u.ID] = m
		}
	}
	return nil
}

type fakeUserStore struct {
	byEmail map[string]model.AdminUser
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]model.AdminUser{}}
}

func (s *fakeUserStore) Create(_ context.Context, username, email, password string, cost int) (model.AdminUser, error) {
	email = strings.ToLower(email)
	if _, ok := s.byEmail[email]; ok {
		return model.AdminUser{}, repository.ErrEmailExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.AdminUser{}, err
	}
	u := model.AdminUser{
		ID:           primitive.NewObjectID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	s.byEmail[email] = u
	return u, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (model.AdminUser, error) {
	u, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return model.AdminUser{}, repository.ErrNotFound
	}
	return u, nil
}

type fakeRegStore struct {
	regs      []model.Registration
	createErr error
}

func (s *fakeRegStore) Create(_ context.Context, reg model.Registration) (model.Registration, error) {
	if s.createErr != nil {
		return model.Registration{}, s.createErr
	}
	reg.ID = primitive.NewObjectID()
	s.regs = append(s.regs, reg)
	return reg, nil
}

func (s *fakeRegStore) List(context.Context) ([]model.Registration, error) {
	return s.regs, nil
}

type fakeContactStore struct {
	msgs      map[string]model.Contact
	createErr error
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{msgs: map[string]model.Contact{}}
}

func (s *fakeContactStore) Create(_ context.Context, m model.Contact) (model.Contact, error) {
	if s.createErr != nil {
		return model.Contact{}, s.createErr
	}
	m.ID = primitive.NewObjectID()
	s.msgs[m.ID.Hex()] = m
	return m, nil
}

func (s *fakeContactStore) List(context.Context) ([]model.Contact, error) {
	out := []model.Contact{}
	for _, m := range s.msgs {
		out = append(out, m)
	}
	return out, nil
}

func (s *fakeContactStore) Delete(_ context.Context, id string) error {
	if _, ok := s.msgs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.msgs, id)
	return nil
}

type fakeDonationStore struct {
	donations []model.Donation
	createErr error
}

func (s *fakeDonationStore) Create(_ context.Context, d model.Donation) (model.Donation, error) {
	if s.createErr != nil {
		return model.Donation{}, s.createErr
	}
	d.ID = primitive.NewObjectID()
	s.donations = append(s.donations, d)
	return d, nil
}

func (s *fakeDonationStore) List(context.Context) ([]model.Donation, error) {
	return s.donations, nil
}

// ----- media, gateway, publisher -----

type fakeMedia struct {
	uploads  []string // filenames in upload order
	removed  []string // URLs removed via rollback
	failFrom int      // fail the Nth upload (1-based); 0 disables
}

func (m *fakeMedia) Upload(_ context.Context, folder string, fh *multipart.FileHeader) (string, error) {
	if m.failFrom > 0 && len(m.uploads)+1 >= m.failFrom {
		return "", fmt.Errorf("upload failed: boom")
	}
	m.uploads = append(m.uploads, fh.Filename)
	return "https://media.test/" + folder + "/" + fh.Filename, nil
}

func (m *fakeMedia) Remove(_ context.Context, url string) error {
	m.removed = append(m.removed, url)
	return nil
}

type fakeGateway struct {
	order payment.Order
	err   error

	gotAmount   int64
	gotCurrency string
}

func (g *fakeGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (payment.Order, error) {
	g.gotAmount = amount
	g.gotCurrency = currency
	if g.err != nil {
		return nil, g.err
	}
	return g.order, nil
}

func capturePublisher(events *[]queue.SubmissionReceivedEvent) Publisher {
	return func(_ context.Context, ev queue.SubmissionReceivedEvent) error {
		*events = append(*events, ev)
		return nil
	}
}

func noopPublisher(context.Context, queue.SubmissionReceivedEvent) error { return nil }

// ----- request helpers -----

// multipartBody builds a multipart form with string fields and files,
// returning the body and its content type. Each file entry is
// field -> filename -> content type.
func multipartBody(t *testing.T, fields map[string][]string, files []filePart) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, vals := range fields {
		for _, v := range vals {
			if err := w.WriteField(k, v); err != nil {
				t.Fatalf("write field %s: %v", k, err)
			}
		}
	}
	for _, fp := range files {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name=%q; filename=%q`, fp.field, fp.name)}
		h["Content-Type"] = []string{fp.contentType}
		pw, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := io.Copy(pw, strings.NewReader(fp.content)); err != nil {
			t.Fatalf("copy part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, w.FormDataContentType()
}

type filePart struct {
	field       string
	name        string
	contentType string
	content     string
}

// newContext builds an echo context and recorder for a request.
func newContext(t *testing.T, method, target string, body io.Reader, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e := echo.New()
	return e.NewContext(req, rec), rec
}
