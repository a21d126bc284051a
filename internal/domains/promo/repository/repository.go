package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"potteryloop/config"
	"potteryloop/infras/otel"
	"potteryloop/internal/domains/promo/model"
	"potteryloop/shared/constant"
	"potteryloop/shared/repository"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Promo interface {
	Insert(ctx context.Context, play model.GamePlay) error
	FindByEmail(ctx context.Context, email string) (model.GamePlay, bool, error)
	GetAll(ctx context.Context) ([]model.GamePlay, error)
}

type repositoryImpl struct {
	store repository.Store[model.GamePlay]
	otel  otel.Otel
}

func New(cfg *config.Config, db *dynamodb.Client, otel otel.Otel) Promo {
	return &repositoryImpl{
		store: repository.NewStore[model.GamePlay](model.EntityName, cfg.Store.PromoTable, model.FieldID, db, otel),
		otel:  otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, play model.GamePlay) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.store.Put(ctx, play)
}

// FindByEmail looks up a prior play through the email index. Errors are
// surfaced to the caller, which decides whether the check is best-effort.
func (r *repositoryImpl) FindByEmail(ctx context.Context, email string) (play model.GamePlay, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".FindByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	plays, err := r.store.QueryIndex(ctx, model.EmailIndex, constant.FieldEmail, email, 1)
	if err != nil {
		return play, false, err
	}

	if len(plays) == 0 {
		return play, false, nil
	}

	return plays[0], true, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context) (plays []model.GamePlay, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.store.Scan(ctx)
}
