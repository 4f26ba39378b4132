package usecases

import (
	"context"

	"github.com/wassup1201/Simple-Agent/internal/adapters/openai"
	"github.com/wassup1201/Simple-Agent/internal/domain/model"
)

type fakeOrders struct {
	calls       int
	orderNumber string
	email       string
	result      model.OrderLookup
	err         error
}

func (f *fakeOrders) FindOrder(_ context.Context, orderNumber, email string) (model.OrderLookup, error) {
	f.calls++
	f.orderNumber = orderNumber
	f.email = email
	return f.result, f.err
}

type fakeCompleter struct {
	configured bool
	calls      int
	messages   []model.ChatMessage
	result     openai.CompletionResult
	err        error
}

func (f *fakeCompleter) Configured() bool { return f.configured }

func (f *fakeCompleter) Complete(_ context.Context, messages []model.ChatMessage) (openai.CompletionResult, error) {
	f.calls++
	f.messages = messages
	return f.result, f.err
}

type fakeRecorder struct {
	entries []model.Transcript
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, t model.Transcript) error {
	f.entries = append(f.entries, t)
	return f.err
}
