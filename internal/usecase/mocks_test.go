package usecase

import (
	"context"
	"fmt"

	"github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/google"
	repo "github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/postgres"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/domain"
	pkglog "github.com/Maksym-Tomusiak/Diploma-API/pkg/log"
)

func testLogger() pkglog.Logger { return pkglog.New("test") }

type mockUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[int64]*domain.User{}}
}

func (r *mockUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repo.ErrDuplicate
		}
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *mockUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *mockUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *mockUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	var users []domain.User
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *mockUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *mockUserRepo) Delete(_ context.Context, user *domain.User) error {
	delete(r.users, user.ID)
	return nil
}

func (r *mockUserRepo) Transaction(_ context.Context, fn func(repo.UserRepository) error) error {
	return fn(r)
}

type mockDocumentRepo struct {
	docs   map[int64]*domain.Document
	nextID int64
}

func newMockDocumentRepo() *mockDocumentRepo {
	return &mockDocumentRepo{docs: map[int64]*domain.Document{}}
}

func (r *mockDocumentRepo) Create(_ context.Context, doc *domain.Document) error {
	for _, d := range r.docs {
		if d.GoogleDocID == doc.GoogleDocID {
			return repo.ErrDuplicate
		}
	}
	r.nextID++
	doc.ID = r.nextID
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *mockDocumentRepo) FindByID(_ context.Context, id int64) (*domain.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *mockDocumentRepo) FindByGoogleDocID(_ context.Context, googleDocID string) (*domain.Document, error) {
	for _, d := range r.docs {
		if d.GoogleDocID == googleDocID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *mockDocumentRepo) FindByUserID(_ context.Context, userID int64) ([]domain.Document, error) {
	var docs []domain.Document
	for _, d := range r.docs {
		if d.UserID == userID {
			docs = append(docs, *d)
		}
	}
	return docs, nil
}

func (r *mockDocumentRepo) Update(_ context.Context, doc *domain.Document) error {
	if _, ok := r.docs[doc.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *mockDocumentRepo) Delete(_ context.Context, doc *domain.Document) error {
	delete(r.docs, doc.ID)
	return nil
}

type mockTemplateRepo struct {
	templates map[int64]*domain.Template
	nextID    int64
}

func newMockTemplateRepo() *mockTemplateRepo {
	return &mockTemplateRepo{templates: map[int64]*domain.Template{}}
}

func (r *mockTemplateRepo) Create(_ context.Context, tpl *domain.Template) error {
	for _, t := range r.templates {
		if t.Name == tpl.Name {
			return repo.ErrDuplicate
		}
	}
	r.nextID++
	tpl.ID = r.nextID
	cp := *tpl
	r.templates[tpl.ID] = &cp
	return nil
}

func (r *mockTemplateRepo) FindByID(_ context.Context, id int64) (*domain.Template, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *mockTemplateRepo) FindByName(_ context.Context, name string) (*domain.Template, error) {
	for _, t := range r.templates {
		if t.Name == name {
			cp := *t
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *mockTemplateRepo) FindAll(_ context.Context, activeOnly bool) ([]domain.Template, error) {
	var tpls []domain.Template
	for _, t := range r.templates {
		if activeOnly && !t.IsActive {
			continue
		}
		tpls = append(tpls, *t)
	}
	return tpls, nil
}

func (r *mockTemplateRepo) Update(_ context.Context, tpl *domain.Template) error {
	for _, t := range r.templates {
		if t.Name == tpl.Name && t.ID != tpl.ID {
			return repo.ErrDuplicate
		}
	}
	cp := *tpl
	r.templates[tpl.ID] = &cp
	return nil
}

func (r *mockTemplateRepo) Delete(_ context.Context, tpl *domain.Template) error {
	delete(r.templates, tpl.ID)
	return nil
}

type mockCheckResultRepo struct {
	results map[int64]*domain.CheckResult
	nextID  int64
}

func newMockCheckResultRepo() *mockCheckResultRepo {
	return &mockCheckResultRepo{results: map[int64]*domain.CheckResult{}}
}

func (r *mockCheckResultRepo) Create(_ context.Context, result *domain.CheckResult) error {
	r.nextID++
	result.ID = r.nextID
	cp := *result
	r.results[result.ID] = &cp
	return nil
}

func (r *mockCheckResultRepo) FindByID(_ context.Context, id int64) (*domain.CheckResult, error) {
	res, ok := r.results[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *mockCheckResultRepo) FindByDocumentID(_ context.Context, documentID int64) ([]domain.CheckResult, error) {
	var results []domain.CheckResult
	for _, res := range r.results {
		if res.DocumentID == documentID {
			results = append(results, *res)
		}
	}
	return results, nil
}

// mockGoogle scripts the provider: every exchange hands out the next element
// of creds, so tests can model a repeat consent without a refresh token.
type mockGoogle struct {
	creds        []*google.Credentials
	calls        int
	email        string
	exchangeErr  error
	emailErr     error
	lastCode     string
	lastRedirect string
}

func (m *mockGoogle) AuthCodeURL(redirectURI string) string {
	return "https://accounts.google.com/o/oauth2/auth?redirect_uri=" + redirectURI
}

func (m *mockGoogle) Exchange(_ context.Context, code, redirectURI string) (*google.Credentials, error) {
	m.lastCode = code
	m.lastRedirect = redirectURI
	if m.exchangeErr != nil {
		return nil, m.exchangeErr
	}
	if m.calls >= len(m.creds) {
		return nil, fmt.Errorf("unexpected exchange call %d", m.calls)
	}
	creds := m.creds[m.calls]
	m.calls++
	return creds, nil
}

func (m *mockGoogle) FetchEmail(_ context.Context, _ *google.Credentials) (string, error) {
	if m.emailErr != nil {
		return "", m.emailErr
	}
	return m.email, nil
}
