package storage

import (
	"fmt"
	"sync"

	"github.com/shashiranjanraj/dinehub/config"
	"github.com/shashiranjanraj/dinehub/pkg/logger"
)

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk = "local"
)

// Connect boots the local disk and, when S3_BUCKET is set, the s3 disk.
// An unknown STORAGE_DISK is an error.
func Connect() error {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = config.StorageDefault()
	disks["local"] = NewLocalDisk(config.StorageLocalRoot(), config.StorageURL())

	if config.StorageS3Bucket() != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}

	if _, ok := disks[defaultDisk]; !ok {
		return fmt.Errorf("storage: default disk %q is not configured", defaultDisk)
	}
	return nil
}

// Use returns the named disk.
func Use(name string) (Disk, error) {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: disk %q is not configured", name)
	}
	return d, nil
}

// Default returns the STORAGE_DISK disk, or nil before Connect.
func Default() Disk {
	managerMu.RLock()
	defer managerMu.RUnlock()
	return disks[defaultDisk]
}

// RegisterDisk installs d under name, making it the default when
// asDefault is set.
func RegisterDisk(name string, d Disk, asDefault bool) {
	managerMu.Lock()
	disks[name] = d
	if asDefault {
		defaultDisk = name
	}
	managerMu.Unlock()
}

// LocalRoot is the directory of the local disk, if booted.
func LocalRoot() (string, bool) {
	managerMu.RLock()
	defer managerMu.RUnlock()
	if d, ok := disks["local"].(*LocalDisk); ok {
		return d.root, true
	}
	return "", false
}
