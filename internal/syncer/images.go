package syncer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fleetsync/internal/logging"
	"fleetsync/internal/models"
)

// MigrateImages promotes every vehicle whose image is still local (bundled
// asset or device file) to the remote object store, rewriting the record's
// image reference to the returned URL. Migration is best-effort per item: a
// vehicle that fails keeps its local reference and the pass moves on.
func (o *Orchestrator) MigrateImages(ctx context.Context) Outcome {
	o.mu.Lock()
	defer o.mu.Unlock()

	log := o.opLogger("migrate_images")

	migrated, err := o.migrateImages(ctx, log)
	if err != nil {
		log.Error(ctx, "image migration failed", "error", err)
		return Failure(err, "")
	}

	o.notifier.Notify("Images migrated",
		fmt.Sprintf("%d vehicle images uploaded to the cloud", migrated))
	return Success("%d images migrated", migrated)
}

// migrateImages is the unlocked worker, shared with Reconcile step 1. Only a
// failure to list the fleet aborts; per-item failures are logged and skipped.
func (o *Orchestrator) migrateImages(ctx context.Context, log logging.Logger) (int, error) {
	all, err := o.vehicles.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	migrated := 0
	for i := range all {
		v := &all[i]
		if v.ImageMigrated() {
			continue
		}

		path, cleanup, err := o.resolveImageSource(v)
		if err != nil {
			log.Warn(ctx, "no image source for vehicle", "plate", v.Plate, "error", err)
			continue
		}

		url, err := o.objects.Upload(ctx, o.cfg.ImageBucket, "images/"+filepath.Base(path), path)
		cleanup()
		if err != nil {
			log.Error(ctx, "image upload failed", "plate", v.Plate, "error", err)
			continue
		}

		v.ImageURL = &url
		if res := o.UpdateVehicle(ctx, v); res.Err != nil && !res.Deferred {
			log.Error(ctx, "failed to rewrite image reference", "plate", v.Plate, "error", res.Err)
			continue
		}
		log.Info(ctx, "image migrated", "plate", v.Plate, "url", url)
		migrated++
	}

	return migrated, nil
}

// resolveImageSource finds a file to upload for the vehicle: its local image
// URI when set, else its bundled asset materialized to a temporary copy. The
// returned cleanup removes that copy (a no-op for direct URIs).
func (o *Orchestrator) resolveImageSource(v *models.Vehicle) (string, func(), error) {
	noop := func() {}

	if v.ImageURL != nil {
		path := strings.TrimPrefix(*v.ImageURL, "file://")
		if _, err := os.Stat(path); err != nil {
			return "", noop, fmt.Errorf("image file missing: %w", err)
		}
		return path, noop, nil
	}

	if v.ImageAssetID != nil {
		src := filepath.Join(o.cfg.AssetDir, fmt.Sprintf("asset_%d.jpg", *v.ImageAssetID))
		dst := filepath.Join(os.TempDir(), fmt.Sprintf("temp_%s.jpg", v.Plate))
		if err := copyFile(src, dst); err != nil {
			return "", noop, err
		}
		return dst, func() { _ = os.Remove(dst) }, nil
	}

	return "", noop, fmt.Errorf("vehicle %s has no image reference", v.Plate)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
