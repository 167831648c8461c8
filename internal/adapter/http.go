package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-dataset-loader/internal/config"
	"github.com/MKhiriev/go-dataset-loader/internal/logger"
	"github.com/MKhiriev/go-dataset-loader/internal/utils"
	"github.com/MKhiriev/go-dataset-loader/internal/validators"
	"github.com/MKhiriev/go-dataset-loader/models"
)

const (
	datasetsPath      = "/v1/private/datasets"
	datasetRetrieve   = "/v1/private/datasets/retrieve"
	datasetItemsPath  = "/v1/private/datasets/items"
	datasetItemDelete = "/v1/private/datasets/items/delete"

	headerWorkspace = "Comet-Workspace"
)

type httpDatasetAdapter struct {
	client    *utils.HTTPClient
	validator validators.Validator

	logger *logger.Logger
}

// NewHTTPDatasetAdapter constructs an HTTP/REST implementation of
// [DatasetAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// request timeout, the User-Agent and the authentication headers from appCfg.
//
// Returns [ErrInvalidAddress] (wrapped) if adapterCfg.HTTPAddress is empty or
// cannot be parsed as a valid URL.
func NewHTTPDatasetAdapter(adapterCfg config.Adapter, appCfg config.App, userAgent string, validator validators.Validator, logger *logger.Logger) (DatasetAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:   baseURL,
		Timeout:   adapterCfg.RequestTimeout,
		UserAgent: userAgent,
		Headers: map[string]string{
			"Authorization": strings.TrimSpace(appCfg.APIKey),
			headerWorkspace: strings.TrimSpace(appCfg.Workspace),
		},
	})

	return &httpDatasetAdapter{client: client, validator: validator, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateDataset implements [DatasetAdapter]. It POSTs req to
// POST /v1/private/datasets.
func (h *httpDatasetAdapter) CreateDataset(ctx context.Context, req models.DatasetCreateRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(datasetsPath)
	if err != nil {
		return fmt.Errorf("%w: create dataset request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// GetDatasetByName implements [DatasetAdapter] via
// POST /v1/private/datasets/retrieve.
func (h *httpDatasetAdapter) GetDatasetByName(ctx context.Context, name string) (models.Dataset, error) {
	var dataset models.Dataset

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DatasetRetrieveRequest{DatasetName: name}).
		SetResult(&dataset).
		Post(datasetRetrieve)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%w: retrieve dataset request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Dataset{}, err
	}

	return dataset, nil
}

// GetDatasetByID implements [DatasetAdapter] via GET /v1/private/datasets/{id}.
func (h *httpDatasetAdapter) GetDatasetByID(ctx context.Context, id string) (models.Dataset, error) {
	var dataset models.Dataset

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&dataset).
		Get(datasetsPath + "/{id}")
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%w: get dataset request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Dataset{}, err
	}

	return dataset, nil
}

// PutItems implements [DatasetAdapter]. The batch is validated locally and
// then sent with PUT /v1/private/datasets/items.
func (h *httpDatasetAdapter) PutItems(ctx context.Context, batch models.DatasetItemBatch) error {
	if err := h.validator.Validate(ctx, batch); err != nil {
		h.logger.Err(err).Str("func", "httpDatasetAdapter.PutItems").Msg("batch rejected before sending")
		return fmt.Errorf("%w: %w", ErrInvalidBatch, err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(batch).
		Put(datasetItemsPath)
	if err != nil {
		return fmt.Errorf("%w: put items request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().
		Str("func", "httpDatasetAdapter.PutItems").
		Str("dataset", batch.Ref().String()).
		Int("items", batch.Len()).
		Dur("took", resp.Time()).
		Msg("items uploaded")

	return nil
}

// DeleteItems implements [DatasetAdapter] via
// POST /v1/private/datasets/items/delete.
func (h *httpDatasetAdapter) DeleteItems(ctx context.Context, itemIDs []string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DatasetItemsDeleteRequest{ItemIDs: itemIDs}).
		Post(datasetItemDelete)
	if err != nil {
		return fmt.Errorf("%w: delete items request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

var _ DatasetAdapter = (*httpDatasetAdapter)(nil)
