package channel_test

import (
	"context"
	"testing"

	"github.com/claimmate/claimmate/internal/channel"
)

type mockAdapter struct {
	channelType channel.ChannelType
}

func (a *mockAdapter) Type() channel.ChannelType { return a.channelType }

func (a *mockAdapter) Reply(ctx context.Context, target string, msg channel.Message) error {
	return nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()
	reg := channel.NewRegistry()
	if err := reg.Register(&mockAdapter{channelType: "line"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	adapter, ok := reg.Get("line")
	if !ok || adapter == nil {
		t.Fatalf("Get(line) = (%v, %v), want adapter", adapter, ok)
	}
	if _, ok := reg.Get("telegram"); ok {
		t.Fatal("Get(telegram) should report missing adapter")
	}
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	t.Parallel()
	reg := channel.NewRegistry()
	if err := reg.Register(&mockAdapter{channelType: "line"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register(&mockAdapter{channelType: "line"}); err == nil {
		t.Fatal("duplicate registration should fail")
	}
}

func TestRegistry_TypesOrdered(t *testing.T) {
	t.Parallel()
	reg := channel.NewRegistry()
	reg.MustRegister(&mockAdapter{channelType: "telegram"})
	reg.MustRegister(&mockAdapter{channelType: "line"})
	types := reg.Types()
	if len(types) != 2 || types[0] != "line" || types[1] != "telegram" {
		t.Fatalf("Types() = %v, want [line telegram]", types)
	}
}
