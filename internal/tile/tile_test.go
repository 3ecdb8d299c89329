package tile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

func testCart(quantities ...int) *store.ShoppingCart {
	cart := &store.ShoppingCart{ShoppingCartID: 9, Items: []*store.ShoppingCartItem{}}
	for i, q := range quantities {
		cart.Items = append(cart.Items, &store.ShoppingCartItem{
			ShoppingCartID: 9,
			ProductID:      uint(i + 1),
			Quantity:       q,
		})
	}
	return cart
}

func TestMessage(t *testing.T) {
	assert.Equal(t, WelcomeMessage, Message(0, 0))
	assert.Equal(t, "You have 5 items in your shopping cart", Message(2, 5))
}

func TestTakeSnapshot(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	snap := TakeSnapshot(testCart(2, 3), at)
	assert.Equal(t, uint(9), snap.CartID)
	assert.Equal(t, 5, snap.ItemsQuantity)
	assert.Equal(t, 2, snap.Lines)
	assert.Equal(t, "You have 5 items in your shopping cart", snap.Message)
	assert.Equal(t, at, snap.TakenAt)

	empty := TakeSnapshot(testCart(), at)
	assert.Zero(t, empty.ItemsQuantity)
	assert.Equal(t, WelcomeMessage, empty.Message)

	assert.Equal(t, WelcomeMessage, TakeSnapshot(nil, at).Message)
}

func TestRenderSizes(t *testing.T) {
	r, err := NewRenderer("", 0)
	require.NoError(t, err)

	imgs, err := r.Render(TakeSnapshot(testCart(120), time.Now()))
	require.NoError(t, err)

	sq, err := png.Decode(bytes.NewReader(imgs.Square))
	require.NoError(t, err)
	assert.Equal(t, SquareWidth, sq.Bounds().Dx())
	assert.Equal(t, SquareHeight, sq.Bounds().Dy())

	wide, err := png.Decode(bytes.NewReader(imgs.Wide))
	require.NoError(t, err)
	assert.Equal(t, WideWidth, wide.Bounds().Dx())
	assert.Equal(t, WideHeight, wide.Bounds().Dy())
}

func TestNewRendererMissingFont(t *testing.T) {
	_, err := NewRenderer(filepath.Join(t.TempDir(), "missing.ttf"), 12)
	assert.Error(t, err)
}

func TestBadgeText(t *testing.T) {
	assert.Equal(t, "7", badgeText(7))
	assert.Equal(t, "99+", badgeText(1000))
}

func TestFilePublisher(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tile")
	pub, err := NewFilePublisher(dir)
	require.NoError(t, err)

	snap := TakeSnapshot(testCart(4), time.Now())
	err = pub.Publish(context.Background(), snap, &Images{Square: []byte("sq"), Wide: []byte("wd")})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, SquareFile))
	require.NoError(t, err)
	assert.Equal(t, "sq", string(raw))

	raw, err = os.ReadFile(filepath.Join(dir, BadgeFile))
	require.NoError(t, err)
	var got Snapshot
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 4, got.ItemsQuantity)
	assert.Equal(t, snap.Message, got.Message)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestNewFilePublisherRequiresDir(t *testing.T) {
	_, err := NewFilePublisher("")
	assert.Error(t, err)
}

func TestNewRedisPublisherRequiresAddr(t *testing.T) {
	_, err := NewRedisPublisher(logger.Nop(), RedisOptions{})
	assert.Error(t, err)
}

type spyPublisher struct {
	mu    sync.Mutex
	snaps []Snapshot
	err   error
}

func (s *spyPublisher) Publish(_ context.Context, snap Snapshot, _ *Images) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps = append(s.snaps, snap)
	return s.err
}

func (s *spyPublisher) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.snaps)
}

func TestMultiPublisherJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	ok, bad := &spyPublisher{}, &spyPublisher{err: boom}

	err := MultiPublisher{bad, nil, ok}.Publish(context.Background(), Snapshot{}, nil)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, ok.count())
	assert.Equal(t, 1, bad.count())
}

type fakeCarts struct {
	mu   sync.Mutex
	cart *store.ShoppingCart
	err  error
}

func (f *fakeCarts) Cart(_ context.Context, _ uint) (*store.ShoppingCart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cart, f.err
}

func TestUpdaterRunOnce(t *testing.T) {
	pub := &spyPublisher{}
	u := NewUpdater(logger.Nop(), &fakeCarts{cart: testCart(1, 1, 1)}, 9, nil, pub, 0)

	snap, err := u.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, snap.ItemsQuantity)
	assert.Equal(t, 1, pub.count())
	assert.Equal(t, DefaultInterval, u.interval)
}

func TestUpdaterRunOnceLoadError(t *testing.T) {
	pub := &spyPublisher{}
	u := NewUpdater(logger.Nop(), &fakeCarts{err: errors.New("db gone")}, 9, nil, pub, 0)

	_, err := u.RunOnce(context.Background())
	assert.Error(t, err)
	assert.Zero(t, pub.count())
}

func TestUpdaterRunKeepsGoingAfterFailures(t *testing.T) {
	pub := &spyPublisher{err: errors.New("disk full")}
	r, err := NewRenderer("", 0)
	require.NoError(t, err)
	u := NewUpdater(logger.Nop(), &fakeCarts{cart: testCart(2)}, 9, r, pub, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- u.Run(ctx) }()

	require.Eventually(t, func() bool { return pub.count() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("updater did not stop after cancel")
	}
}
