package session

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"github.com/shopnext/shopnext/internal/file"
)

// fileStore persists the session as a JSON file, by default under the
// shopnext home directory.
type fileStore struct {
	sessionFile string
}

// NewFileStore returns a Store backed by a file at the specified path. If
// the path is empty, the default location under the user's home directory
// is used.
func NewFileStore(sessionFile string) (Store, error) {
	if sessionFile == "" {
		shopnextHome, err := getShopnextHome()
		if err != nil {
			return nil, errors.Wrap(err, "error finding shopnext home")
		}
		sessionFile = path.Join(shopnextHome, "session")
	}
	return &fileStore{
		sessionFile: sessionFile,
	}, nil
}

func (f *fileStore) Commit(session Session) error {
	sessionDir := path.Dir(f.sessionFile)
	if _, err := os.Stat(sessionDir); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of %s",
				sessionDir,
			)
		}
		// The directory doesn't exist-- create it
		if err = os.MkdirAll(sessionDir, 0755); err != nil {
			return errors.Wrapf(err, "error creating %s", sessionDir)
		}
	}

	sessionBytes, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "error marshaling session")
	}

	// Write to a temp file, then rename it into place. A reader can never
	// observe a partially written session.
	tmpFile := f.sessionFile + ".tmp"
	if err := ioutil.WriteFile(tmpFile, sessionBytes, 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", tmpFile)
	}
	if err := os.Rename(tmpFile, f.sessionFile); err != nil {
		return errors.Wrapf(err, "error moving %s into place", tmpFile)
	}

	return nil
}

func (f *fileStore) Current() (Session, bool, error) {
	session := Session{}

	if !file.Exists(f.sessionFile) {
		return session, false, nil
	}

	sessionBytes, err := ioutil.ReadFile(f.sessionFile)
	if err != nil {
		return session, false, errors.Wrapf(
			err,
			"error reading session file at %s",
			f.sessionFile,
		)
	}
	if err := json.Unmarshal(sessionBytes, &session); err != nil {
		return session, false, errors.Wrapf(
			err,
			"error parsing session file at %s",
			f.sessionFile,
		)
	}

	return session, true, nil
}

func (f *fileStore) Clear() error {
	if err := os.Remove(f.sessionFile); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "error deleting session")
	}
	return nil
}

func getShopnextHome() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}

	return path.Join(homeDir, ".shopnext"), nil
}
