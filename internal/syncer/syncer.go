// Package syncer implements the bidirectional synchronization between the
// local store and the remote table store.
//
// The reconciliation model is last-writer-wins by full snapshot exchange:
// every local record is pushed item-by-item, then every remote item is pulled
// and upserted locally. Records carry no versions or timestamps, so
// concurrent edits from two devices clobber each other in scan order, and a
// failure mid-way leaves the steps already completed in place (at-least-once,
// no rollback). Both properties are part of the contract.
package syncer

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"fleetsync/internal/logging"
	"fleetsync/internal/models"
	"fleetsync/internal/netx"
	"fleetsync/internal/notify"
	"fleetsync/internal/remote"
	"fleetsync/internal/store/users"
	"fleetsync/internal/store/vehicles"
	"fleetsync/internal/wire"
)

// Config names the remote tables and the image bucket, and locates bundled
// image assets on disk.
type Config struct {
	UsersTable    string
	VehiclesTable string
	ImageBucket   string
	AssetDir      string
}

// Orchestrator coordinates the local store, the connectivity probe and the
// remote stores. All operations return an Outcome and never panic or
// propagate errors to the caller.
//
// Reconcile and MigrateImages serialize on an internal mutex so two
// overlapping full syncs cannot corrupt each other's snapshot assumptions;
// concurrent callers wait their turn.
type Orchestrator struct {
	users    users.Repository
	vehicles vehicles.Repository
	tables   remote.TableStore
	objects  remote.ObjectStore
	probe    netx.Probe
	notifier notify.Notifier
	log      logging.Logger
	cfg      Config

	mu sync.Mutex
}

func New(
	users users.Repository,
	vehicles vehicles.Repository,
	tables remote.TableStore,
	objects remote.ObjectStore,
	probe netx.Probe,
	notifier notify.Notifier,
	log logging.Logger,
	cfg Config,
) *Orchestrator {
	return &Orchestrator{
		users:    users,
		vehicles: vehicles,
		tables:   tables,
		objects:  objects,
		probe:    probe,
		notifier: notifier,
		log:      log,
		cfg:      cfg,
	}
}

// opLogger returns a child logger tagged with the operation name and a
// correlation id, so interleaved operations stay distinguishable in the log.
func (o *Orchestrator) opLogger(name string) logging.Logger {
	return o.log.With("op", name, "op_id", uuid.NewString())
}

// PushOne upserts a single item into the given remote table. Offline is a
// deferred outcome, not an error: the caller's local write already happened.
func (o *Orchestrator) PushOne(ctx context.Context, table string, item wire.Item) Outcome {
	log := o.opLogger("push_one").With("table", table)

	if !o.probe.HasLink() {
		log.Warn(ctx, "offline, item not pushed")
		return Deferredf("saved locally, will sync once a connection is available")
	}

	if err := o.tables.PutItem(ctx, table, item); err != nil {
		log.Error(ctx, "remote put failed", "error", err)
		return Failure(fmt.Errorf("failed to push item to %s: %w", table, err), "")
	}

	log.Debug(ctx, "item pushed")
	return Success("synchronized with the cloud")
}

// AddVehicle stores the vehicle locally and, when online, mirrors it to the
// remote table. Exactly one notification is emitted either way.
func (o *Orchestrator) AddVehicle(ctx context.Context, v *models.Vehicle) Outcome {
	log := o.opLogger("add_vehicle").With("plate", v.Plate)

	if err := o.vehicles.Upsert(ctx, v); err != nil {
		log.Error(ctx, "local insert failed", "error", err)
		return Failure(err, "")
	}
	total, err := o.vehicles.Count(ctx)
	if err != nil {
		return Failure(err, "")
	}

	if !o.probe.HasLink() {
		o.notifier.Notify("Vehicle added",
			fmt.Sprintf("Vehicle stored locally, the fleet now has %d vehicles", total))
		return Success("vehicle %s saved locally", v.Plate)
	}

	res := o.PushOne(ctx, o.cfg.VehiclesTable, wire.EncodeVehicle(*v))
	if res.OK() {
		o.notifier.Notify("Vehicle added",
			fmt.Sprintf("Vehicle stored in the cloud, the fleet now has %d vehicles", total))
	}
	return res
}

// UpdateVehicle replaces the vehicle locally and pushes the new state.
func (o *Orchestrator) UpdateVehicle(ctx context.Context, v *models.Vehicle) Outcome {
	log := o.opLogger("update_vehicle").With("plate", v.Plate)

	if err := o.vehicles.Update(ctx, v); err != nil {
		log.Error(ctx, "local update failed", "error", err)
		return Failure(err, "")
	}
	o.notifier.Notify("Vehicle updated",
		fmt.Sprintf("Vehicle with plate %s was updated", v.Plate))

	return o.PushOne(ctx, o.cfg.VehiclesTable, wire.EncodeVehicle(*v))
}

// DeleteVehicle removes the vehicle locally first (irreversible), then
// deletes the remote copy when online. The offline outcome is informational:
// the local deletion is not rolled back.
func (o *Orchestrator) DeleteVehicle(ctx context.Context, v *models.Vehicle) Outcome {
	log := o.opLogger("delete_vehicle").With("plate", v.Plate)

	if err := o.vehicles.Delete(ctx, v.Plate); err != nil {
		log.Error(ctx, "local delete failed", "error", err)
		return Failure(err, "")
	}
	total, err := o.vehicles.Count(ctx)
	if err != nil {
		return Failure(err, "")
	}

	if !o.probe.HasLink() {
		o.notifier.Notify("Vehicle deleted",
			fmt.Sprintf("Vehicle removed locally, %d vehicles remain", total))
		return Deferredf("deleted locally, will sync once a connection is available")
	}

	if err := o.tables.DeleteItem(ctx, o.cfg.VehiclesTable, wire.VehicleKey(v.Plate)); err != nil {
		log.Error(ctx, "remote delete failed", "error", err)
		return Failure(fmt.Errorf("failed to delete vehicle %s remotely: %w", v.Plate, err), "")
	}

	o.notifier.Notify("Vehicle deleted",
		fmt.Sprintf("Vehicle removed from the cloud, %d vehicles remain", total))
	log.Debug(ctx, "vehicle deleted and synchronized")
	return Success("vehicle %s deleted", v.Plate)
}

// RegisterUser inserts the user locally to obtain an assigned id, then
// re-checks connectivity with both probe tiers before mirroring the record.
// User creation matters more than vehicle writes, hence the active probe.
func (o *Orchestrator) RegisterUser(ctx context.Context, u *models.User) Outcome {
	log := o.opLogger("register_user").With("name", u.Name)

	id, err := o.users.Insert(ctx, u)
	if err != nil {
		log.Error(ctx, "local insert failed", "error", err)
		return Failure(err, "")
	}
	u.ID = id

	total, err := o.users.Count(ctx)
	if err != nil {
		return Failure(err, "")
	}

	connected := o.probe.HasLink() && o.probe.HasInternet(ctx)
	if !connected {
		o.notifier.Notify("User added",
			fmt.Sprintf("User stored locally, there are %d users", total))
		return Deferredf("saved locally, will sync once a connection is available")
	}

	res := o.PushOne(ctx, o.cfg.UsersTable, wire.EncodeUser(*u))
	if res.OK() {
		o.notifier.Notify("User added",
			fmt.Sprintf("User stored in the cloud, there are %d users", total))
	}
	return res
}

// Reconcile runs the full bidirectional synchronization: image migration,
// then push of both local tables, then pull of both remote tables. The call
// aborts on the first error; completed steps stay in place.
func (o *Orchestrator) Reconcile(ctx context.Context) Outcome {
	o.mu.Lock()
	defer o.mu.Unlock()

	log := o.opLogger("reconcile")

	if !o.probe.HasLink() {
		log.Warn(ctx, "offline, reconciliation aborted")
		return Failure(ErrOffline, "no internet connection, synchronization was not possible")
	}

	log.Info(ctx, "starting bidirectional synchronization")

	if _, err := o.migrateImages(ctx, log); err != nil {
		return o.reconcileFailure(ctx, log, err)
	}

	// Push phase: one point-in-time read per table, one put per record.
	allUsers, err := o.users.GetAll(ctx)
	if err != nil {
		return o.reconcileFailure(ctx, log, err)
	}
	for _, u := range allUsers {
		if err := o.tables.PutItem(ctx, o.cfg.UsersTable, wire.EncodeUser(u)); err != nil {
			return o.reconcileFailure(ctx, log, err)
		}
	}
	allVehicles, err := o.vehicles.GetAll(ctx)
	if err != nil {
		return o.reconcileFailure(ctx, log, err)
	}
	for _, v := range allVehicles {
		if err := o.tables.PutItem(ctx, o.cfg.VehiclesTable, wire.EncodeVehicle(v)); err != nil {
			return o.reconcileFailure(ctx, log, err)
		}
	}
	log.Info(ctx, "push phase completed", "users", len(allUsers), "vehicles", len(allVehicles))

	// Pull phase: one full scan per table, upsert every item locally.
	if err := o.pullVehicles(ctx, log); err != nil {
		return o.reconcileFailure(ctx, log, err)
	}
	if err := o.pullUsers(ctx, log); err != nil {
		return o.reconcileFailure(ctx, log, err)
	}

	totalVehicles, err := o.vehicles.Count(ctx)
	if err != nil {
		return o.reconcileFailure(ctx, log, err)
	}
	totalUsers, err := o.users.Count(ctx)
	if err != nil {
		return o.reconcileFailure(ctx, log, err)
	}

	o.notifier.Notify("Sync finished",
		fmt.Sprintf("Synchronized with the cloud: %d vehicles and %d users", totalVehicles, totalUsers))
	log.Info(ctx, "synchronization completed", "vehicles", totalVehicles, "users", totalUsers)

	return Success("synchronized: %d vehicles, %d users", totalVehicles, totalUsers)
}

func (o *Orchestrator) pullVehicles(ctx context.Context, log logging.Logger) error {
	items, err := o.tables.Scan(ctx, o.cfg.VehiclesTable)
	if err != nil {
		return err
	}
	for _, item := range items {
		v, err := wire.DecodeVehicle(item)
		if err != nil {
			return err
		}
		if err := o.vehicles.Upsert(ctx, &v); err != nil {
			return err
		}
	}
	log.Info(ctx, "pulled vehicles from the cloud", "count", len(items))
	return nil
}

func (o *Orchestrator) pullUsers(ctx context.Context, log logging.Logger) error {
	items, err := o.tables.Scan(ctx, o.cfg.UsersTable)
	if err != nil {
		return err
	}
	for _, item := range items {
		u, err := wire.DecodeUser(item)
		if err != nil {
			return err
		}
		if err := o.users.Upsert(ctx, &u); err != nil {
			return err
		}
	}
	log.Info(ctx, "pulled users from the cloud", "count", len(items))
	return nil
}

func (o *Orchestrator) reconcileFailure(ctx context.Context, log logging.Logger, err error) Outcome {
	log.Error(ctx, "synchronization failed", "error", err)
	if hostUnreachable(err) {
		return Failure(err, "cannot reach the cloud, check your connection")
	}
	return Failure(err, "")
}
