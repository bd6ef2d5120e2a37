package main

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Calls onChange (in the watcher goroutine) when the file is written or replaced. The parent directory is watched since editors often replace files on save.
type fileWatcher struct {
	w        *fsnotify.Watcher
	name     string
	onChange func()
}

func watchFile(filename string, onChange func()) (*fileWatcher, error) {
	name, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(name)); err != nil {
		w.Close()
		return nil, err
	}
	fw := &fileWatcher{w: w, name: name, onChange: onChange}
	go fw.eventLoop()
	return fw, nil
}

func (fw *fileWatcher) Close() error {
	return fw.w.Close()
}

func (fw *fileWatcher) eventLoop() {
	for {
		select {
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			log.Printf("watcher: %v", err)
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			if fw.isChange(ev) {
				fw.onChange()
			}
		}
	}
}

func (fw *fileWatcher) isChange(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != fw.name {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
