package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/authz"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/repository"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/scope"
)

const qrSizePx = 512

// QRCodeUseCase generación y listado de códigos QR del menú público.
type QRCodeUseCase struct {
	qrcodes     repository.QRCodeRepository
	restaurants repository.RestaurantRepository
	encoder     QREncoder
	// publicBaseURL base de las URLs de menú codificadas en los QR.
	publicBaseURL string
}

// NewQRCodeUseCase construye el caso de uso de códigos QR.
func NewQRCodeUseCase(qrcodes repository.QRCodeRepository, restaurants repository.RestaurantRepository, encoder QREncoder, publicBaseURL string) *QRCodeUseCase {
	return &QRCodeUseCase{qrcodes: qrcodes, restaurants: restaurants, encoder: encoder, publicBaseURL: publicBaseURL}
}

// Create genera el PNG del QR apuntando al menú público del tenant del scope
// y lo persiste.
func (uc *QRCodeUseCase) Create(ctx context.Context, sc scope.Scope, p *domain.Principal, in dto.CreateQRCodeRequest) (*dto.QRCodeResponse, error) {
	if in.Label == "" {
		return nil, domain.ErrInvalidInput
	}
	if !sc.Restricted() {
		return nil, domain.ErrAccessDenied
	}
	r, err := uc.restaurants.GetByID(ctx, sc.RestaurantID())
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	target := fmt.Sprintf("%s/api/menu/%s", uc.publicBaseURL, r.Slug)
	png, err := uc.encoder.EncodePNG(target, qrSizePx)
	if err != nil {
		return nil, fmt.Errorf("generar QR: %w", err)
	}
	q := &entity.QRCode{
		UUID:         uuid.New().String(),
		RestaurantID: r.ID,
		Label:        in.Label,
		TargetURL:    target,
		PNG:          png,
		CreatedAt:    time.Now(),
	}
	if err := uc.qrcodes.Create(ctx, sc, q); err != nil {
		return nil, err
	}
	return toQRCodeResponse(q), nil
}

// List lista los QR del scope.
func (uc *QRCodeUseCase) List(ctx context.Context, sc scope.Scope) ([]*dto.QRCodeResponse, error) {
	list, err := uc.qrcodes.List(ctx, sc)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.QRCodeResponse, 0, len(list))
	for _, q := range list {
		out = append(out, toQRCodeResponse(q))
	}
	return out, nil
}

// PNG devuelve los bytes de imagen de un QR visible para el scope y el principal.
func (uc *QRCodeUseCase) PNG(ctx context.Context, sc scope.Scope, p *domain.Principal, id int64) ([]byte, error) {
	q, err := uc.loadAuthorized(ctx, sc, p, authz.ActionView, id)
	if err != nil {
		return nil, err
	}
	return q.PNG, nil
}

// Delete elimina un QR.
func (uc *QRCodeUseCase) Delete(ctx context.Context, sc scope.Scope, p *domain.Principal, id int64) error {
	if _, err := uc.loadAuthorized(ctx, sc, p, authz.ActionDelete, id); err != nil {
		return err
	}
	return uc.qrcodes.Delete(ctx, sc, id)
}

func (uc *QRCodeUseCase) loadAuthorized(ctx context.Context, sc scope.Scope, p *domain.Principal, action authz.Action, id int64) (*entity.QRCode, error) {
	q, err := uc.qrcodes.GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.CanAccessOwned(p, action, q.RestaurantID) {
		return nil, domain.ErrNotFound
	}
	return q, nil
}

func toQRCodeResponse(q *entity.QRCode) *dto.QRCodeResponse {
	return &dto.QRCodeResponse{
		ID:        q.ID,
		UUID:      q.UUID,
		Label:     q.Label,
		TargetURL: q.TargetURL,
		CreatedAt: q.CreatedAt,
	}
}
