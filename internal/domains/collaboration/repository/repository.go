package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"potteryloop/config"
	"potteryloop/infras/otel"
	"potteryloop/internal/domains/collaboration/model"
	"potteryloop/shared/constant"
	"potteryloop/shared/repository"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Collaboration interface {
	Insert(ctx context.Context, inquiry model.Inquiry) error
	GetAll(ctx context.Context) ([]model.Inquiry, error)
}

type repositoryImpl struct {
	store repository.Store[model.Inquiry]
	otel  otel.Otel
}

func New(cfg *config.Config, db *dynamodb.Client, otel otel.Otel) Collaboration {
	return &repositoryImpl{
		store: repository.NewStore[model.Inquiry](model.EntityName, cfg.Store.CollaborationsTable, model.FieldCollaborationID, db, otel),
		otel:  otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, inquiry model.Inquiry) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.store.Put(ctx, inquiry)
}

func (r *repositoryImpl) GetAll(ctx context.Context) (inquiries []model.Inquiry, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.store.Scan(ctx)
}
