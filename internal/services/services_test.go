package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetsync/internal/common"
	"fleetsync/internal/logging"
	"fleetsync/internal/models"
	"fleetsync/internal/store"
	"fleetsync/internal/syncer"
	"fleetsync/internal/wire"
)

type fakeTable struct {
	putCalls    int
	deleteCalls int
}

func (t *fakeTable) PutItem(ctx context.Context, table string, item wire.Item) error {
	t.putCalls++
	return nil
}

func (t *fakeTable) DeleteItem(ctx context.Context, table string, key wire.Item) error {
	t.deleteCalls++
	return nil
}

func (t *fakeTable) Scan(ctx context.Context, table string) ([]wire.Item, error) {
	return nil, nil
}

type fakeObjects struct{}

func (o *fakeObjects) Upload(ctx context.Context, bucket, key, path string) (string, error) {
	return "https://" + bucket + ".s3.amazonaws.com/" + key, nil
}

type fakeProbe struct {
	link     bool
	internet bool
}

func (p *fakeProbe) HasLink() bool                        { return p.link }
func (p *fakeProbe) HasInternet(ctx context.Context) bool { return p.internet }

type fakeNotifier struct {
	titles []string
}

func (n *fakeNotifier) Notify(title, body string) {
	n.titles = append(n.titles, title)
}

type fixture struct {
	repos *store.Repositories
	table *fakeTable
	probe *fakeProbe
	auth  *AuthService
	fleet *VehicleService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	repos, err := store.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	// A pooled second connection would see its own empty in-memory DB.
	repos.DB.SetMaxOpenConns(1)
	t.Cleanup(func() { repos.Close() })

	table := &fakeTable{}
	probe := &fakeProbe{link: true, internet: true}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	orch := syncer.New(repos.Users, repos.Vehicles, table, &fakeObjects{},
		probe, &fakeNotifier{}, log, syncer.Config{
			UsersTable:    "Users",
			VehiclesTable: "Vehicles",
			ImageBucket:   "fleet-vehicles",
			AssetDir:      t.TempDir(),
		})

	return &fixture{
		repos: repos,
		table: table,
		probe: probe,
		auth:  NewAuthService(repos.Users, orch),
		fleet: NewVehicleService(repos.Vehicles, orch),
	}
}

const strongPassword = "Str0ngPassw0rd!!"

func TestAuthService_RegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, res := f.auth.Register(ctx, "dispatcher", strongPassword)
	require.True(t, res.OK())
	require.NotNil(t, u)
	assert.NotZero(t, u.ID)
	assert.Equal(t, 1, f.table.putCalls)

	got, err := f.auth.Login(ctx, "dispatcher", strongPassword)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Login(context.Background(), "nobody", strongPassword)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, res := f.auth.Register(ctx, "dispatcher", strongPassword)
	require.True(t, res.OK())

	_, err := f.auth.Login(ctx, "dispatcher", "Wr0ngPassword!!!")
	assert.ErrorIs(t, err, common.ErrBadCredentials)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, res := f.auth.Register(ctx, "", strongPassword)
	assert.ErrorIs(t, res.Err, common.ErrMissingFields)

	_, res = f.auth.Register(ctx, "dispatcher", "short")
	assert.ErrorIs(t, res.Err, common.ErrWeakPassword)

	_, res = f.auth.Register(ctx, "dispatcher", strongPassword)
	require.True(t, res.OK())
	_, res = f.auth.Register(ctx, "dispatcher", strongPassword)
	assert.ErrorIs(t, res.Err, common.ErrUserExists)
}

func TestAuthService_RegisterOfflineDeferred(t *testing.T) {
	f := newFixture(t)
	f.probe.link = false
	ctx := context.Background()

	u, res := f.auth.Register(ctx, "dispatcher", strongPassword)
	require.NotNil(t, u)
	assert.True(t, res.Deferred)
	assert.Zero(t, f.table.putCalls)

	// The local insert survives the deferred push.
	_, err := f.auth.Login(ctx, "dispatcher", strongPassword)
	assert.NoError(t, err)
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Str0ngPassw0rd!!", true},
		{"too short", "Sh0rt!aA", false},
		{"no upper", "weak0password!!!", false},
		{"no lower", "WEAK0PASSWORD!!!", false},
		{"no digit", "WeakPassword!!!!", false},
		{"no symbol", "Weak0Password000", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePassword(tt.password))
		})
	}
}

func testVehicle(plate string) *models.Vehicle {
	return &models.Vehicle{
		Plate:     plate,
		Brand:     "Toyota",
		Year:      2020,
		Color:     "Red",
		DailyRate: decimal.RequireFromString("50.0"),
		Active:    true,
	}
}

func TestVehicleService_AddListDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := f.fleet.Add(ctx, testVehicle("ABC123"))
	require.True(t, res.OK())
	assert.Equal(t, 1, f.table.putCalls)

	fleet, err := f.fleet.List(ctx)
	require.NoError(t, err)
	require.Len(t, fleet, 1)
	assert.Equal(t, "ABC123", fleet[0].Plate)

	res = f.fleet.Delete(ctx, "ABC123")
	require.True(t, res.OK())
	assert.Equal(t, 1, f.table.deleteCalls)

	fleet, err = f.fleet.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, fleet)
}

func TestVehicleService_AddValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v := testVehicle("ABC123")
	v.Brand = ""
	res := f.fleet.Add(ctx, v)
	assert.ErrorIs(t, res.Err, common.ErrMissingFields)

	res = f.fleet.Add(ctx, testVehicle("not-a-plate"))
	assert.ErrorIs(t, res.Err, common.ErrInvalidPlate)

	v = testVehicle("ABC123")
	v.DailyRate = decimal.RequireFromString("-1")
	res = f.fleet.Add(ctx, v)
	assert.ErrorIs(t, res.Err, common.ErrInvalidRate)

	assert.Zero(t, f.table.putCalls)
}

func TestVehicleService_UpdateMissing(t *testing.T) {
	f := newFixture(t)

	res := f.fleet.Update(context.Background(), testVehicle("ZZZ999"))
	assert.ErrorIs(t, res.Err, common.ErrNotFound)
}

func TestVehicleService_DeleteMissing(t *testing.T) {
	f := newFixture(t)

	res := f.fleet.Delete(context.Background(), "ZZZ999")
	assert.ErrorIs(t, res.Err, common.ErrNotFound)
	assert.Zero(t, f.table.deleteCalls)
}

func TestVehicleService_ObserveReplaysAndFollows(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.True(t, f.fleet.Add(ctx, testVehicle("ABC123")).OK())

	ch := f.fleet.Observe(ctx)

	snap := <-ch
	require.Len(t, snap, 1)
	assert.Equal(t, "ABC123", snap[0].Plate)

	require.True(t, f.fleet.Add(ctx, testVehicle("XYZ789")).OK())
	snap = <-ch
	assert.Len(t, snap, 2)
}

func TestVehicleService_ObserveDropsStaleSnapshots(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := f.fleet.Observe(ctx)
	<-ch // initial empty snapshot

	// Two mutations without a read in between: the observer sees only the
	// latest state.
	require.True(t, f.fleet.Add(ctx, testVehicle("ABC123")).OK())
	require.True(t, f.fleet.Add(ctx, testVehicle("XYZ789")).OK())

	snap := <-ch
	assert.Len(t, snap, 2)
}

func TestVehicleService_ObserveEndsOnCancel(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	ch := f.fleet.Observe(ctx)
	<-ch
	cancel()

	for range ch {
	}
	// Mutations after unsubscribe must not panic on the closed channel.
	assert.True(t, f.fleet.Add(context.Background(), testVehicle("ABC123")).OK())
}

func TestParseRate(t *testing.T) {
	d, err := ParseRate("50.0")
	require.NoError(t, err)
	assert.Equal(t, "50.0", d.String())

	_, err = ParseRate("ten")
	assert.ErrorIs(t, err, common.ErrInvalidRate)

	_, err = ParseRate("-5")
	assert.ErrorIs(t, err, common.ErrInvalidRate)
}
