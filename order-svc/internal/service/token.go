package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"tableside/order-svc/internal/domain"
)

// UUIDTokenIssuer mints opaque tokens. The value carries no meaning beyond
// identity; customers only ever see it rendered as a QR code.
type UUIDTokenIssuer struct{}

func (UUIDTokenIssuer) Issue() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

var _ TokenIssuer = UUIDTokenIssuer{}

// tokenFields is the extraction priority for structured scan payloads.
// Different client generations wrap the token under different names.
var tokenFields = []string{"qr_token", "token", "code", "data"}

type TokenService struct {
	repo      OrderRepository
	qrEncoder QRGenerator
}

func NewTokenService(repo OrderRepository, qrEncoder QRGenerator) *TokenService {
	return &TokenService{repo: repo, qrEncoder: qrEncoder}
}

// ExtractToken pulls the token out of a presented scan value. A JSON object
// is probed under the known field names in priority order; anything else,
// including an object without a usable field, falls back to the raw value.
func ExtractToken(presented string) string {
	trimmed := strings.TrimSpace(presented)
	if !strings.HasPrefix(trimmed, "{") {
		return trimmed
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return trimmed
	}
	for _, field := range tokenFields {
		if value, ok := payload[field].(string); ok && value != "" {
			return value
		}
	}
	return trimmed
}

// Resolve maps a presented scan value back to exactly one order. An unknown
// token is an expected condition (old receipts, foreign codes), not a fault.
func (s *TokenService) Resolve(ctx context.Context, presented string) (*domain.Order, error) {
	token := ExtractToken(presented)
	if token == "" {
		return nil, ErrNotFound
	}

	order, err := s.repo.GetOrderByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, asTransient(err)
	}
	return order, nil
}

// QRCodePNG renders the order's token as a scannable PNG.
func (s *TokenService) QRCodePNG(ctx context.Context, orderID int) ([]byte, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, asTransient(err)
	}
	return s.qrEncoder.Encode(order.QRToken)
}
