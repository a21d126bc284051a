package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"potteryloop/config"
	"potteryloop/infras/otel"
	"potteryloop/internal/domains/booking/model"
	"potteryloop/shared/constant"
	"potteryloop/shared/repository"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Booking interface {
	Insert(ctx context.Context, submission model.Submission) error
	Get(ctx context.Context, id string) (model.Submission, bool, error)
	GetAll(ctx context.Context) ([]model.Submission, error)
}

type repositoryImpl struct {
	store repository.Store[model.Submission]
	otel  otel.Otel
}

func New(cfg *config.Config, db *dynamodb.Client, otel otel.Otel) Booking {
	return &repositoryImpl{
		store: repository.NewStore[model.Submission](model.EntityName, cfg.Store.BookingsTable, model.FieldBookingID, db, otel),
		otel:  otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, submission model.Submission) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.store.Put(ctx, submission)
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (submission model.Submission, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.store.Get(ctx, id)
}

func (r *repositoryImpl) GetAll(ctx context.Context) (submissions []model.Submission, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.store.Scan(ctx)
}
