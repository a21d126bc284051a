package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"potteryloop/config"
	"potteryloop/infras/otel"
	"potteryloop/internal/domains/instructor/model"
	"potteryloop/shared/constant"
	"potteryloop/shared/repository"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Instructor interface {
	Insert(ctx context.Context, application model.Application) error
	GetAll(ctx context.Context) ([]model.Application, error)
}

type repositoryImpl struct {
	store repository.Store[model.Application]
	otel  otel.Otel
}

func New(cfg *config.Config, db *dynamodb.Client, otel otel.Otel) Instructor {
	return &repositoryImpl{
		store: repository.NewStore[model.Application](model.EntityName, cfg.Store.InstructorTable, model.FieldApplicationID, db, otel),
		otel:  otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, application model.Application) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.store.Put(ctx, application)
}

func (r *repositoryImpl) GetAll(ctx context.Context) (applications []model.Application, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.store.Scan(ctx)
}
