package usecases

import (
	"context"

	"github.com/wassup1201/Simple-Agent/internal/domain/model"
)

type TranscriptRecorder interface {
	Record(ctx context.Context, t model.Transcript) error
}

type NopRecorder struct{}

func (NopRecorder) Record(context.Context, model.Transcript) error { return nil }
