package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Maksym-Tomusiak/Diploma-API/internal/domain"
)

// Storage errors surfaced to the usecase layer. gorm never leaks past this
// package; requires gorm.Config{TranslateError: true} for duplicate detection.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, user *domain.User) error
	// Transaction runs fn against a repository bound to a single transaction.
	Transaction(ctx context.Context, fn func(UserRepository) error) error
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	FindByID(ctx context.Context, id int64) (*domain.Document, error)
	FindByGoogleDocID(ctx context.Context, googleDocID string) (*domain.Document, error)
	FindByUserID(ctx context.Context, userID int64) ([]domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, doc *domain.Document) error
}

type TemplateRepository interface {
	Create(ctx context.Context, tpl *domain.Template) error
	FindByID(ctx context.Context, id int64) (*domain.Template, error)
	FindByName(ctx context.Context, name string) (*domain.Template, error)
	FindAll(ctx context.Context, activeOnly bool) ([]domain.Template, error)
	Update(ctx context.Context, tpl *domain.Template) error
	Delete(ctx context.Context, tpl *domain.Template) error
}

type CheckResultRepository interface {
	Create(ctx context.Context, result *domain.CheckResult) error
	FindByID(ctx context.Context, id int64) (*domain.CheckResult, error)
	FindByDocumentID(ctx context.Context, documentID int64) ([]domain.CheckResult, error)
}

type userRepo struct{ db *gorm.DB }

type documentRepo struct{ db *gorm.DB }

type templateRepo struct{ db *gorm.DB }

type checkResultRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository               { return &userRepo{db: db} }
func NewDocumentRepository(db *gorm.DB) DocumentRepository       { return &documentRepo{db: db} }
func NewTemplateRepository(db *gorm.DB) TemplateRepository       { return &templateRepo{db: db} }
func NewCheckResultRepository(db *gorm.DB) CheckResultRepository { return &checkResultRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	return translate(r.db.WithContext(ctx).Save(user).Error)
}

func (r *userRepo) Delete(ctx context.Context, user *domain.User) error {
	return translate(r.db.WithContext(ctx).Delete(user).Error)
}

func (r *userRepo) Transaction(ctx context.Context, fn func(UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&userRepo{db: tx})
	})
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	return translate(r.db.WithContext(ctx).Create(doc).Error)
}

func (r *documentRepo) FindByID(ctx context.Context, id int64) (*domain.Document, error) {
	var doc domain.Document
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		return nil, translate(err)
	}
	return &doc, nil
}

func (r *documentRepo) FindByGoogleDocID(ctx context.Context, googleDocID string) (*domain.Document, error) {
	var doc domain.Document
	if err := r.db.WithContext(ctx).Where("google_doc_id = ?", googleDocID).First(&doc).Error; err != nil {
		return nil, translate(err)
	}
	return &doc, nil
}

func (r *documentRepo) FindByUserID(ctx context.Context, userID int64) ([]domain.Document, error) {
	var docs []domain.Document
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&docs).Error; err != nil {
		return nil, translate(err)
	}
	return docs, nil
}

func (r *documentRepo) Update(ctx context.Context, doc *domain.Document) error {
	return translate(r.db.WithContext(ctx).Save(doc).Error)
}

func (r *documentRepo) Delete(ctx context.Context, doc *domain.Document) error {
	return translate(r.db.WithContext(ctx).Delete(doc).Error)
}

func (r *templateRepo) Create(ctx context.Context, tpl *domain.Template) error {
	return translate(r.db.WithContext(ctx).Create(tpl).Error)
}

func (r *templateRepo) FindByID(ctx context.Context, id int64) (*domain.Template, error) {
	var tpl domain.Template
	if err := r.db.WithContext(ctx).First(&tpl, id).Error; err != nil {
		return nil, translate(err)
	}
	return &tpl, nil
}

func (r *templateRepo) FindByName(ctx context.Context, name string) (*domain.Template, error) {
	var tpl domain.Template
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tpl).Error; err != nil {
		return nil, translate(err)
	}
	return &tpl, nil
}

func (r *templateRepo) FindAll(ctx context.Context, activeOnly bool) ([]domain.Template, error) {
	q := r.db.WithContext(ctx).Order("id")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var tpls []domain.Template
	if err := q.Find(&tpls).Error; err != nil {
		return nil, translate(err)
	}
	return tpls, nil
}

func (r *templateRepo) Update(ctx context.Context, tpl *domain.Template) error {
	return translate(r.db.WithContext(ctx).Save(tpl).Error)
}

func (r *templateRepo) Delete(ctx context.Context, tpl *domain.Template) error {
	return translate(r.db.WithContext(ctx).Delete(tpl).Error)
}

func (r *checkResultRepo) Create(ctx context.Context, result *domain.CheckResult) error {
	return translate(r.db.WithContext(ctx).Create(result).Error)
}

func (r *checkResultRepo) FindByID(ctx context.Context, id int64) (*domain.CheckResult, error) {
	var result domain.CheckResult
	if err := r.db.WithContext(ctx).First(&result, id).Error; err != nil {
		return nil, translate(err)
	}
	return &result, nil
}

func (r *checkResultRepo) FindByDocumentID(ctx context.Context, documentID int64) ([]domain.CheckResult, error) {
	var results []domain.CheckResult
	if err := r.db.WithContext(ctx).Where("document_id = ?", documentID).Order("id").Find(&results).Error; err != nil {
		return nil, translate(err)
	}
	return results, nil
}
