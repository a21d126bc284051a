package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"potteryloop/config"
	"potteryloop/infras/otel"
	"potteryloop/internal/domains/contact/model"
	"potteryloop/shared/constant"
	"potteryloop/shared/repository"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Contact interface {
	Insert(ctx context.Context, message model.Message) error
	GetAll(ctx context.Context) ([]model.Message, error)
}

type repositoryImpl struct {
	store repository.Store[model.Message]
	otel  otel.Otel
}

func New(cfg *config.Config, db *dynamodb.Client, otel otel.Otel) Contact {
	return &repositoryImpl{
		store: repository.NewStore[model.Message](model.EntityName, cfg.Store.ContactTable, model.FieldMessageID, db, otel),
		otel:  otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, message model.Message) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.store.Put(ctx, message)
}

func (r *repositoryImpl) GetAll(ctx context.Context) (messages []model.Message, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.store.Scan(ctx)
}
