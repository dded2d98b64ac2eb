package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses configuration flags from args (typically os.Args[1:]).
// It uses its own flag.FlagSet so binaries can keep their own flags on the
// global set; unknown flags produce an error.
//
// Flags:
//
//	-storage-type  file | memory
//	-group-id      shared namespace identifier
//	-shared-dir    root directory of group containers
//	-store-file    store file name inside the group container
//	-watch         enable the cross-process change watcher
//	-key-backend   keyring | file | memory
//	-key-dir       directory for file-based key storage
//	-key-name      name of the shared key entry
//	-algorithm     xchacha20poly1305 | aes256gcm
//	-sync-interval interval between remote sync rounds (e.g. "5m")
//	-sync-url      base URL of the remote sync endpoint
//	-sync-file     JSON export used as the sync source
//	-user          id of the account the bridge serves
//	-follow        keep running and print item updates
//	-log-file      write logs to a file instead of stdout
//	-c/-config     json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-pass-bridge", flag.ContinueOnError)

	var (
		storageType    string
		groupID        string
		sharedDir      string
		fileName       string
		watchExternal  bool
		keyBackend     string
		keyDir         string
		keyName        string
		algorithm      string
		syncInterval   time.Duration
		syncURL        string
		syncFile       string
		userID         string
		follow         bool
		logFile        string
		jsonConfigPath string
	)

	fs.StringVar(&storageType, "storage-type", "", "Storage type: file or memory")
	fs.StringVar(&groupID, "group-id", "", "Shared namespace identifier")
	fs.StringVar(&sharedDir, "shared-dir", "", "Root directory of shared group containers")
	fs.StringVar(&fileName, "store-file", "", "Store file name")
	fs.BoolVar(&watchExternal, "watch", false, "Watch the store for changes made by other processes")
	fs.StringVar(&keyBackend, "key-backend", "", "Key backend: keyring, file or memory")
	fs.StringVar(&keyDir, "key-dir", "", "Directory for file based key storage")
	fs.StringVar(&keyName, "key-name", "", "Shared key entry name")
	fs.StringVar(&algorithm, "algorithm", "", "Cipher algorithm for new ciphertext")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Remote sync interval (e.g., 5m)")
	fs.StringVar(&syncURL, "sync-url", "", "Remote sync endpoint base URL")
	fs.StringVar(&syncFile, "sync-file", "", "JSON export used as the sync source")
	fs.StringVar(&userID, "user", "", "Account id the bridge serves")
	fs.BoolVar(&follow, "follow", false, "Keep running and print item updates")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			Type:          storageType,
			GroupID:       groupID,
			SharedDir:     sharedDir,
			FileName:      fileName,
			WatchExternal: watchExternal,
		},
		Keys: Keys{
			Backend: keyBackend,
			FileDir: keyDir,
			KeyName: keyName,
		},
		Crypto: Crypto{
			Algorithm: algorithm,
		},
		Sync: Sync{
			Interval:   syncInterval,
			SourceURL:  syncURL,
			SourceFile: syncFile,
		},
		App: App{
			UserID:  userID,
			Follow:  follow,
			LogFile: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
