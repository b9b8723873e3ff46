package impl

import (
	"context"
	"time"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/repository"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/service"
)

// Function-field stubs for the persistence and service collaborators.
// Each test assigns only the fields it needs; calling an unassigned
// field panics, which flags an unexpected interaction.

type stubOrderRepo struct {
	CreateFn         func(ctx context.Context, order *entity.Order) error
	FindByUIDFn      func(ctx context.Context, uid int64) (*entity.Order, error)
	AggregateByUIDFn func(ctx context.Context, uid int64) (*entity.AggregatedOrder, error)
	AggregateListFn  func(ctx context.Context, filter repository.OrderFilter, skip, limit int64) ([]*entity.AggregatedOrder, error)
	CountFn          func(ctx context.Context, filter repository.OrderFilter) (int64, error)
	UpdateByUIDFn    func(ctx context.Context, uid int64, patch repository.OrderPatch) (*entity.Order, error)
	UpdateStatusFn   func(ctx context.Context, uid int64, status entity.OrderStatus) error
	DeleteByUIDFn    func(ctx context.Context, uid int64) (*entity.Order, error)
}

func (s *stubOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	return s.CreateFn(ctx, order)
}

func (s *stubOrderRepo) FindByUID(ctx context.Context, uid int64) (*entity.Order, error) {
	return s.FindByUIDFn(ctx, uid)
}

func (s *stubOrderRepo) AggregateByUID(ctx context.Context, uid int64) (*entity.AggregatedOrder, error) {
	return s.AggregateByUIDFn(ctx, uid)
}

func (s *stubOrderRepo) AggregateList(ctx context.Context, filter repository.OrderFilter, skip, limit int64) ([]*entity.AggregatedOrder, error) {
	return s.AggregateListFn(ctx, filter, skip, limit)
}

func (s *stubOrderRepo) Count(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	return s.CountFn(ctx, filter)
}

func (s *stubOrderRepo) UpdateByUID(ctx context.Context, uid int64, patch repository.OrderPatch) (*entity.Order, error) {
	return s.UpdateByUIDFn(ctx, uid, patch)
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, uid int64, status entity.OrderStatus) error {
	return s.UpdateStatusFn(ctx, uid, status)
}

func (s *stubOrderRepo) DeleteByUID(ctx context.Context, uid int64) (*entity.Order, error) {
	return s.DeleteByUIDFn(ctx, uid)
}

type stubDeliveryRepo struct {
	CreateFn      func(ctx context.Context, delivery *entity.Delivery) error
	FindByUIDFn   func(ctx context.Context, uid int64) (*entity.Delivery, error)
	ListFn        func(ctx context.Context, filter repository.DeliveryFilter, skip, limit int64) ([]*entity.Delivery, error)
	CountFn       func(ctx context.Context, filter repository.DeliveryFilter) (int64, error)
	DeleteByUIDFn func(ctx context.Context, uid int64) (*entity.Delivery, error)
}

func (s *stubDeliveryRepo) Create(ctx context.Context, delivery *entity.Delivery) error {
	return s.CreateFn(ctx, delivery)
}

func (s *stubDeliveryRepo) FindByUID(ctx context.Context, uid int64) (*entity.Delivery, error) {
	return s.FindByUIDFn(ctx, uid)
}

func (s *stubDeliveryRepo) List(ctx context.Context, filter repository.DeliveryFilter, skip, limit int64) ([]*entity.Delivery, error) {
	return s.ListFn(ctx, filter, skip, limit)
}

func (s *stubDeliveryRepo) Count(ctx context.Context, filter repository.DeliveryFilter) (int64, error) {
	return s.CountFn(ctx, filter)
}

func (s *stubDeliveryRepo) DeleteByUID(ctx context.Context, uid int64) (*entity.Delivery, error) {
	return s.DeleteByUIDFn(ctx, uid)
}

type stubUserRepo struct {
	CreateFn       func(ctx context.Context, user *entity.User) error
	FindByCIDFn    func(ctx context.Context, cid int64) (*entity.User, error)
	FindByEmailFn  func(ctx context.Context, email string) (*entity.User, error)
	ListFn         func(ctx context.Context, skip, limit int64) ([]*entity.User, error)
	CountFn        func(ctx context.Context) (int64, error)
	UpdateByCIDFn  func(ctx context.Context, cid int64, patch repository.UserPatch) (*entity.User, error)
	DeleteByCIDsFn func(ctx context.Context, cids []int64) (int64, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	return s.CreateFn(ctx, user)
}

func (s *stubUserRepo) FindByCID(ctx context.Context, cid int64) (*entity.User, error) {
	return s.FindByCIDFn(ctx, cid)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.FindByEmailFn(ctx, email)
}

func (s *stubUserRepo) List(ctx context.Context, skip, limit int64) ([]*entity.User, error) {
	return s.ListFn(ctx, skip, limit)
}

func (s *stubUserRepo) Count(ctx context.Context) (int64, error) {
	return s.CountFn(ctx)
}

func (s *stubUserRepo) UpdateByCID(ctx context.Context, cid int64, patch repository.UserPatch) (*entity.User, error) {
	return s.UpdateByCIDFn(ctx, cid, patch)
}

func (s *stubUserRepo) DeleteByCIDs(ctx context.Context, cids []int64) (int64, error) {
	return s.DeleteByCIDsFn(ctx, cids)
}

type stubProductRepo struct {
	CreateFn      func(ctx context.Context, product *entity.Product) error
	FindByUIDFn   func(ctx context.Context, uid int64) (*entity.Product, error)
	ListFn        func(ctx context.Context, filter repository.ProductFilter, skip, limit int64) ([]*entity.Product, error)
	CountFn       func(ctx context.Context, filter repository.ProductFilter) (int64, error)
	UpdateByUIDFn func(ctx context.Context, uid int64, patch repository.ProductPatch) (*entity.Product, error)
	DeleteByUIDFn func(ctx context.Context, uid int64) (*entity.Product, error)
}

func (s *stubProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return s.CreateFn(ctx, product)
}

func (s *stubProductRepo) FindByUID(ctx context.Context, uid int64) (*entity.Product, error) {
	return s.FindByUIDFn(ctx, uid)
}

func (s *stubProductRepo) List(ctx context.Context, filter repository.ProductFilter, skip, limit int64) ([]*entity.Product, error) {
	return s.ListFn(ctx, filter, skip, limit)
}

func (s *stubProductRepo) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	return s.CountFn(ctx, filter)
}

func (s *stubProductRepo) UpdateByUID(ctx context.Context, uid int64, patch repository.ProductPatch) (*entity.Product, error) {
	return s.UpdateByUIDFn(ctx, uid, patch)
}

func (s *stubProductRepo) DeleteByUID(ctx context.Context, uid int64) (*entity.Product, error) {
	return s.DeleteByUIDFn(ctx, uid)
}

type stubAttributeRepo struct {
	CreateFn      func(ctx context.Context, attribute *entity.Attribute) error
	FindByUIDFn   func(ctx context.Context, uid int64) (*entity.Attribute, error)
	ListFn        func(ctx context.Context, skip, limit int64) ([]*entity.Attribute, error)
	CountFn       func(ctx context.Context) (int64, error)
	UpdateByUIDFn func(ctx context.Context, uid int64, patch repository.AttributePatch) (*entity.Attribute, error)
	DeleteByUIDFn func(ctx context.Context, uid int64) (*entity.Attribute, error)
}

func (s *stubAttributeRepo) Create(ctx context.Context, attribute *entity.Attribute) error {
	return s.CreateFn(ctx, attribute)
}

func (s *stubAttributeRepo) FindByUID(ctx context.Context, uid int64) (*entity.Attribute, error) {
	return s.FindByUIDFn(ctx, uid)
}

func (s *stubAttributeRepo) List(ctx context.Context, skip, limit int64) ([]*entity.Attribute, error) {
	return s.ListFn(ctx, skip, limit)
}

func (s *stubAttributeRepo) Count(ctx context.Context) (int64, error) {
	return s.CountFn(ctx)
}

func (s *stubAttributeRepo) UpdateByUID(ctx context.Context, uid int64, patch repository.AttributePatch) (*entity.Attribute, error) {
	return s.UpdateByUIDFn(ctx, uid, patch)
}

func (s *stubAttributeRepo) DeleteByUID(ctx context.Context, uid int64) (*entity.Attribute, error) {
	return s.DeleteByUIDFn(ctx, uid)
}

type stubVariantRepo struct {
	CreateFn      func(ctx context.Context, variant *entity.Variant) error
	FindByUIDFn   func(ctx context.Context, uid int64) (*entity.Variant, error)
	ListFn        func(ctx context.Context, filter repository.VariantFilter, skip, limit int64) ([]*entity.Variant, error)
	ListAllFn     func(ctx context.Context) ([]*entity.Variant, error)
	CountFn       func(ctx context.Context, filter repository.VariantFilter) (int64, error)
	UpdateByUIDFn func(ctx context.Context, uid int64, patch repository.VariantPatch) (*entity.Variant, error)
	DeleteByUIDFn func(ctx context.Context, uid int64) (*entity.Variant, error)
}

func (s *stubVariantRepo) Create(ctx context.Context, variant *entity.Variant) error {
	return s.CreateFn(ctx, variant)
}

func (s *stubVariantRepo) FindByUID(ctx context.Context, uid int64) (*entity.Variant, error) {
	return s.FindByUIDFn(ctx, uid)
}

func (s *stubVariantRepo) List(ctx context.Context, filter repository.VariantFilter, skip, limit int64) ([]*entity.Variant, error) {
	return s.ListFn(ctx, filter, skip, limit)
}

func (s *stubVariantRepo) ListAll(ctx context.Context) ([]*entity.Variant, error) {
	return s.ListAllFn(ctx)
}

func (s *stubVariantRepo) Count(ctx context.Context, filter repository.VariantFilter) (int64, error) {
	return s.CountFn(ctx, filter)
}

func (s *stubVariantRepo) UpdateByUID(ctx context.Context, uid int64, patch repository.VariantPatch) (*entity.Variant, error) {
	return s.UpdateByUIDFn(ctx, uid, patch)
}

func (s *stubVariantRepo) DeleteByUID(ctx context.Context, uid int64) (*entity.Variant, error) {
	return s.DeleteByUIDFn(ctx, uid)
}

type stubReviewRepo struct {
	CreateFn      func(ctx context.Context, review *entity.Review) error
	FindByUIDFn   func(ctx context.Context, uid int64) (*entity.Review, error)
	ListFn        func(ctx context.Context, filter repository.ReviewFilter, skip, limit int64) ([]*entity.Review, error)
	CountFn       func(ctx context.Context, filter repository.ReviewFilter) (int64, error)
	ListRatingsFn func(ctx context.Context, filter repository.ReviewFilter) ([]float64, error)
	UpdateByUIDFn func(ctx context.Context, uid int64, patch repository.ReviewPatch) (*entity.Review, error)
	DeleteByUIDFn func(ctx context.Context, uid int64) (*entity.Review, error)
}

func (s *stubReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return s.CreateFn(ctx, review)
}

func (s *stubReviewRepo) FindByUID(ctx context.Context, uid int64) (*entity.Review, error) {
	return s.FindByUIDFn(ctx, uid)
}

func (s *stubReviewRepo) List(ctx context.Context, filter repository.ReviewFilter, skip, limit int64) ([]*entity.Review, error) {
	return s.ListFn(ctx, filter, skip, limit)
}

func (s *stubReviewRepo) Count(ctx context.Context, filter repository.ReviewFilter) (int64, error) {
	return s.CountFn(ctx, filter)
}

func (s *stubReviewRepo) ListRatings(ctx context.Context, filter repository.ReviewFilter) ([]float64, error) {
	return s.ListRatingsFn(ctx, filter)
}

func (s *stubReviewRepo) UpdateByUID(ctx context.Context, uid int64, patch repository.ReviewPatch) (*entity.Review, error) {
	return s.UpdateByUIDFn(ctx, uid, patch)
}

func (s *stubReviewRepo) DeleteByUID(ctx context.Context, uid int64) (*entity.Review, error) {
	return s.DeleteByUIDFn(ctx, uid)
}

// stubTxManager runs the callback inline with a factory of stub
// repositories, mimicking a committed transaction.
type stubTxManager struct {
	orders     *stubOrderRepo
	deliveries *stubDeliveryRepo
	users      *stubUserRepo
}

func (s *stubTxManager) Execute(ctx context.Context, fn func(ctx context.Context, repos repository.RepositoryFactory) error) error {
	return fn(ctx, &stubRepoFactory{tx: s})
}

type stubRepoFactory struct {
	tx *stubTxManager
}

func (f *stubRepoFactory) OrderRepo() repository.OrderRepository {
	return f.tx.orders
}

func (f *stubRepoFactory) DeliveryRepo() repository.DeliveryRepository {
	return f.tx.deliveries
}

func (f *stubRepoFactory) UserRepo() repository.UserRepository {
	return f.tx.users
}

type stubTokenService struct {
	GenerateSessionTokensFn   func(cid int64, email string) (string, string, error)
	GenerateActivationTokenFn func(cid int64, email string) (string, error)
	GenerateResetTokenFn      func(cid int64, email string) (string, error)
	ValidateTokenFn           func(tokenString string) (*service.Claims, error)
}

func (s *stubTokenService) GenerateSessionTokens(cid int64, email string) (string, string, error) {
	return s.GenerateSessionTokensFn(cid, email)
}

func (s *stubTokenService) GenerateActivationToken(cid int64, email string) (string, error) {
	return s.GenerateActivationTokenFn(cid, email)
}

func (s *stubTokenService) GenerateResetToken(cid int64, email string) (string, error) {
	return s.GenerateResetTokenFn(cid, email)
}

func (s *stubTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	return s.ValidateTokenFn(tokenString)
}

func (s *stubTokenService) AccessTokenTTL() time.Duration  { return time.Hour }
func (s *stubTokenService) RefreshTokenTTL() time.Duration { return 7 * 24 * time.Hour }
func (s *stubTokenService) ScopedTokenTTL() time.Duration  { return time.Hour }

// memoryCache is an in-memory TokenCache for exercising the token
// checkpoint flows without Redis.
type memoryCache struct {
	entries map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	value, ok := c.entries[key]
	if !ok {
		return "", service.ErrCacheMiss
	}

	return value, nil
}

func (c *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.entries[key] = value

	return nil
}

func (c *memoryCache) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.entries, key)
	}

	return nil
}

type stubHasher struct {
	HashFn  func(password string) (string, error)
	CheckFn func(password, hash string) bool
}

func (s *stubHasher) Hash(password string) (string, error) {
	if s.HashFn != nil {
		return s.HashFn(password)
	}

	return "hashed:" + password, nil
}

func (s *stubHasher) Check(password, hash string) bool {
	if s.CheckFn != nil {
		return s.CheckFn(password, hash)
	}

	return "hashed:"+password == hash
}

type stubMailer struct {
	SendMailFn func(ctx context.Context, body, to, subject string) error
	Sent       []string
}

func (s *stubMailer) SendMail(ctx context.Context, body, to, subject string) error {
	if s.SendMailFn != nil {
		return s.SendMailFn(ctx, body, to, subject)
	}
	s.Sent = append(s.Sent, to)

	return nil
}
