package assistantService

import (
	"AgriVision/internal/entity"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeDirectory struct {
	mu         sync.Mutex
	schemes    []entity.Scheme
	pesticides []entity.Pesticide
	shops      []entity.Shop
	err        error
	calls      []string
}

func (f *fakeDirectory) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeDirectory) TopActiveSchemes(_ context.Context, limit int) ([]entity.Scheme, error) {
	f.record("schemes")
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.schemes) {
		return f.schemes[:limit], nil
	}
	return f.schemes, nil
}

func (f *fakeDirectory) SearchPesticides(_ context.Context, _ string) ([]entity.Pesticide, error) {
	f.record("pesticides")
	if f.err != nil {
		return nil, f.err
	}
	return f.pesticides, nil
}

func (f *fakeDirectory) ListVerifiedShops(_ context.Context) ([]entity.Shop, error) {
	f.record("shops")
	if f.err != nil {
		return nil, f.err
	}
	return f.shops, nil
}

type stubStrategy struct {
	name  entity.StrategyName
	text  string
	err   error
	panic bool
	calls int
}

func (s *stubStrategy) Name() entity.StrategyName { return s.name }

func (s *stubStrategy) TryRespond(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.panic {
		panic("boom")
	}
	return s.text, s.err
}

type fakeOllama struct {
	text   string
	err    error
	prompt string
}

func (f *fakeOllama) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

var errUnreachable = errors.New("dial tcp 127.0.0.1:11434: connect: connection refused")

func seededDirectory() *fakeDirectory {
	return &fakeDirectory{
		schemes: []entity.Scheme{
			{ID: 1, Title: "Pradhan Mantri Kisan Samman Nidhi (PM-KISAN)", Description: "Income support of ₹6,000 per year to small and marginal farmers"},
			{ID: 2, Title: "Pradhan Mantri Fasal Bima Yojana (PMFBY)", Description: "Crop insurance scheme to provide financial support to farmers"},
		},
		pesticides: []entity.Pesticide{
			{Name: "Chlorpyrifos 20% EC", UsageInfo: "Broad-spectrum organophosphate insecticide"},
			{Name: "Imidacloprid 17.8% SL", UsageInfo: "Systemic insecticide for sucking pests"},
			{Name: "Mancozeb 75% WP", UsageInfo: "Broad-spectrum protective fungicide"},
			{Name: "Pendimethalin 30% EC", UsageInfo: "Pre-emergence herbicide"},
		},
		shops: []entity.Shop{
			{ID: "1", Name: "Agri Solutions & Supplies", Address: "Near Bus Stand, Hadapsar"},
			{ID: "2", Name: "Bharat Agro Store", Address: "Shop Complex, Hinjewadi"},
		},
	}
}
