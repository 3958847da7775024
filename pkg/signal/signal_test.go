package signal

import (
	"context"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"go.uber.org/zap/zaptest"
)

func TestHandler_Watch(t *testing.T) {
	g := NewWithT(t)

	var code atomic.Int32
	code.Store(-1)
	orig := exit
	exit = func(c int) {
		code.Store(int32(c))
	}
	t.Cleanup(func() {
		exit = orig
	})

	h := NewHandler(time.Second, zaptest.NewLogger(t))
	ctx := h.Watch(context.TODO())
	g.Expect(ctx.Err()).ToNot(HaveOccurred())

	h.c <- syscall.SIGTERM
	g.Eventually(ctx.Done()).Should(BeClosed())
	g.Expect(code.Load()).To(BeEquivalentTo(-1))

	h.c <- syscall.SIGINT
	g.Eventually(code.Load).Should(BeEquivalentTo(1))
}

func TestHandler_Shutdown(t *testing.T) {
	g := NewWithT(t)
	h := NewHandler(time.Second, zaptest.NewLogger(t))
	ctx := h.Watch(context.TODO())

	var order []string
	h.RegisterShutdownHook("g", func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	h.RegisterShutdownHook("g", func(context.Context) error {
		order = append(order, "second")
		return errors.New("ignored")
	})

	g.Expect(h.Shutdown()).To(Equal(0))
	g.Expect(order).To(Equal([]string{"second", "first"}))
	// watcher is stopped, context is released
	g.Eventually(ctx.Done()).Should(BeClosed())
	g.Expect(h.Shutdown()).To(Equal(0))
}

func TestHandler_ShutdownTimeout(t *testing.T) {
	g := NewWithT(t)
	h := NewHandler(20*time.Millisecond, zaptest.NewLogger(t))
	block := make(chan struct{})
	defer close(block)
	h.RegisterShutdownHook(nil, func(context.Context) error {
		<-block
		return nil
	})

	g.Expect(h.Shutdown()).To(Equal(1))
}
