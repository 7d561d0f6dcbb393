package repository

import (
	"fmt"

	"mintmate/internal/db/models/postgres/public/model"
	. "mintmate/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type ApiRequestRepository interface {
	Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error)
	Update(db qrm.Executable, ar model.APIRequest) error
}

type apiRequestRepositoryHandler struct{}

func NewApiRequestRepository() ApiRequestRepository {
	return apiRequestRepositoryHandler{}
}

func insertApiRequestQuery(ar model.APIRequest) postgres.InsertStatement {
	return APIRequest.
		INSERT(APIRequest.AllColumns).
		MODEL(ar).
		RETURNING(APIRequest.AllColumns)
}

func updateApiRequestQuery(ar model.APIRequest) postgres.UpdateStatement {
	return APIRequest.
		UPDATE(APIRequest.DurationMs, APIRequest.StatusCode, APIRequest.ResponseBody, APIRequest.DataSource).
		MODEL(ar).
		WHERE(APIRequest.RequestID.EQ(postgres.UUID(ar.RequestID)))
}

func (h apiRequestRepositoryHandler) Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error) {
	if ar.RequestID == uuid.Nil {
		ar.RequestID = uuid.New()
	}

	out := &model.APIRequest{}
	err := insertApiRequestQuery(ar).Query(db, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert API request: %w", err)
	}

	return out, nil
}

func (h apiRequestRepositoryHandler) Update(db qrm.Executable, ar model.APIRequest) error {
	_, err := updateApiRequestQuery(ar).Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update API request: %w", err)
	}

	return nil
}

// noopApiRequestRepository is used when no database is configured.
type noopApiRequestRepository struct{}

func NewNoopApiRequestRepository() ApiRequestRepository {
	return noopApiRequestRepository{}
}

func (noopApiRequestRepository) Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error) {
	return nil, nil
}

func (noopApiRequestRepository) Update(db qrm.Executable, ar model.APIRequest) error {
	return nil
}
