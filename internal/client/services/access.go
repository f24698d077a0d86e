package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"resipass/internal/client/api"
	"resipass/internal/client/models"
	"resipass/internal/client/session"
	"resipass/internal/logging"
)

// noRecordsMessage is the exact body the server sends with HTTP 404 when the
// history query matches nothing. It means "empty", not "error".
const noRecordsMessage = "No se encontraron registros de acceso con los filtros especificados."

// HistoryFilter narrows the access history query. The zero value fetches
// everything for the resident.
type HistoryFilter struct {
	From         *time.Time
	To           *time.Time
	AccessType   string // "Entrada" or "Salida"
	VehiclePlate string
}

// AccessService fetches the read-only access history for the logged-in
// resident. No pagination: the full result set is fetched and rendered.
type AccessService interface {
	History(ctx context.Context, filter HistoryFilter) ([]models.AccessRecord, error)
}

type accessService struct {
	api   API
	store session.Store
	log   logging.Logger
}

// NewAccessService constructs an AccessService bound to the given API client
// and session store.
func NewAccessService(api API, store session.Store, log logging.Logger) AccessService {
	return &accessService{api: api, store: store, log: log.With("component", "access")}
}

// History fetches the access records scoped to the stored resident id. The
// server's "no records found" 404 and an empty list are treated identically.
func (s *accessService) History(ctx context.Context, filter HistoryFilter) ([]models.AccessRecord, error) {
	sess, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	req := api.AccessHistoryRequest{
		ResidentID:   sess.ResidentID,
		AccessType:   filter.AccessType,
		VehiclePlate: filter.VehiclePlate,
	}
	if filter.From != nil {
		req.From = api.NewWireTime(*filter.From)
	}
	if filter.To != nil {
		req.To = api.NewWireTime(*filter.To)
	}

	resp, err := s.api.AccessHistory(ctx, sess.Token, req)
	if err != nil {
		if isNoRecords(err) {
			s.log.Debug(ctx, "no access records for filters")
			return []models.AccessRecord{}, nil
		}
		return nil, err
	}

	records := make([]models.AccessRecord, 0, len(resp.Accesses))
	for _, a := range resp.Accesses {
		records = append(records, a.Record())
	}
	s.log.Debug(ctx, "access history fetched", "count", len(records))
	return records, nil
}

// isNoRecords recognizes the server's empty-result 404.
func isNoRecords(err error) bool {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode != http.StatusNotFound {
		return false
	}
	return apiErr.Body == noRecordsMessage || apiErr.Message == noRecordsMessage
}
