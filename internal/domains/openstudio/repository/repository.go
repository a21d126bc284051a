package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"potteryloop/config"
	"potteryloop/infras/otel"
	"potteryloop/internal/domains/openstudio/model"
	"potteryloop/shared/constant"
	"potteryloop/shared/repository"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type OpenStudio interface {
	Insert(ctx context.Context, request model.WaitlistRequest) error
	GetAll(ctx context.Context) ([]model.WaitlistRequest, error)
}

type repositoryImpl struct {
	store repository.Store[model.WaitlistRequest]
	otel  otel.Otel
}

func New(cfg *config.Config, db *dynamodb.Client, otel otel.Otel) OpenStudio {
	return &repositoryImpl{
		store: repository.NewStore[model.WaitlistRequest](model.EntityName, cfg.Store.OpenStudioTable, model.FieldWaitlistID, db, otel),
		otel:  otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, request model.WaitlistRequest) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.store.Put(ctx, request)
}

func (r *repositoryImpl) GetAll(ctx context.Context) (requests []model.WaitlistRequest, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.store.Scan(ctx)
}
