package uidsvc

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sundayezeilo/uidgen/internal/errx"
	"github.com/sundayezeilo/uidgen/uid"
)

const (
	DefaultMaxBatch  = 1000
	DefaultMaxLength = 64
)

// Service defines the business logic operations for issuing identifiers.
type Service interface {
	Mint(ctx context.Context, req MintRequest) ([]MintedUID, error)
	Claim(ctx context.Context, candidate string) (ClaimResult, error)
	Decode(ctx context.Context, id string) (uint64, error)
	Stats(ctx context.Context) (Stats, error)
}

// service implements the Service interface. The underlying uid.Store
// is single-threaded, so every store access happens under mu.
type service struct {
	mu            sync.Mutex
	store         *uid.Store
	defaultLength int
	maxBatch      int
	maxLength     int
}

// ServiceConfig holds configuration for the service.
type ServiceConfig struct {
	Store         *uid.Store // defaults to a fresh store at DefaultLength
	DefaultLength int        // length used when a mint request omits one
	MaxBatch      int        // largest batch a single Mint may request
	MaxLength     int        // longest string identifier Mint accepts
}

// NewService creates a new service instance.
func NewService(config *ServiceConfig) Service {
	if config == nil {
		config = &ServiceConfig{}
	}

	defaultLength := config.DefaultLength
	if defaultLength <= 0 {
		defaultLength = uid.DefaultLength
	}

	store := config.Store
	if store == nil {
		store = uid.New(defaultLength)
	}

	maxBatch := config.MaxBatch
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatch
	}

	maxLength := config.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	return &service{
		store:         store,
		defaultLength: defaultLength,
		maxBatch:      maxBatch,
		maxLength:     maxLength,
	}
}

// Mint issues a batch of identifiers of the requested kind.
func (s *service) Mint(ctx context.Context, req MintRequest) ([]MintedUID, error) {
	const op = "uidsvc.service.Mint"

	if !req.Kind.Valid() {
		return nil, errx.E(op, errx.Invalid,
			fmt.Errorf("unknown kind %q", req.Kind))
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 0 || count > s.maxBatch {
		return nil, errx.E(op, errx.Invalid,
			fmt.Errorf("count must be between 1 and %d", s.maxBatch))
	}

	if req.Length < 0 || req.Length > s.maxLength {
		return nil, errx.E(op, errx.Invalid,
			fmt.Errorf("length must be between 0 and %d", s.maxLength))
	}
	if req.Kind.Numeric() && req.Length != 0 {
		return nil, errx.E(op, errx.Invalid,
			errors.New("length does not apply to numeric kinds"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]MintedUID, 0, count)
	for range count {
		out = append(out, s.mintOne(req.Kind, req.Length))
	}
	return out, nil
}

// mintOne issues a single identifier. Callers hold mu.
func (s *service) mintOne(kind Kind, length int) MintedUID {
	if length == 0 {
		length = s.defaultLength
	}

	switch kind {
	case KindHuman:
		return MintedUID{UID: s.store.NextHuman(length)}
	case KindU16:
		n := s.store.NextU16()
		return MintedUID{UID: uid.NumberToUID(uint64(n)), Number: uint64(n), Numeric: true}
	case KindU32:
		n := s.store.NextU32()
		return MintedUID{UID: uid.NumberToUID(uint64(n)), Number: uint64(n), Numeric: true}
	case KindU64:
		n := s.store.NextU64()
		return MintedUID{UID: uid.NumberToUID(n), Number: n, Numeric: true}
	default:
		return MintedUID{UID: s.store.NextLen(length)}
	}
}

// Claim records a caller-supplied identifier if it has not been issued
// before, or issues a replacement when it collides.
func (s *service) Claim(ctx context.Context, candidate string) (ClaimResult, error) {
	const op = "uidsvc.service.Claim"

	if candidate == "" {
		return ClaimResult{}, errx.E(op, errx.Invalid,
			errors.New("candidate cannot be empty"))
	}
	if len(candidate) > s.maxLength {
		return ClaimResult{}, errx.E(op, errx.Invalid,
			fmt.Errorf("candidate too long (max %d characters)", s.maxLength))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	replacement, replaced := s.store.MakeUnique(candidate)
	if replaced {
		return ClaimResult{Accepted: false, Replacement: replacement}, nil
	}
	return ClaimResult{Accepted: true}, nil
}

// Decode converts a base62 identifier back into its numeric value.
func (s *service) Decode(ctx context.Context, id string) (uint64, error) {
	const op = "uidsvc.service.Decode"

	if id == "" {
		return 0, errx.E(op, errx.Invalid, errors.New("uid cannot be empty"))
	}

	n, ok := uid.UIDToNumber(id)
	if !ok {
		return 0, errx.E(op, errx.Invalid,
			fmt.Errorf("%q is not a valid base62 uid", id))
	}
	return n, nil
}

// Stats reports how many identifiers the store has recorded.
func (s *service) Stats(ctx context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{Issued: s.store.Size()}, nil
}
