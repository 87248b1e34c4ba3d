// SPDX-License-Identifier: MPL-2.0

package datastore

import "context"

// FakeSession is an in-memory Session used by parser and completion
// tests: entries are registered by exact xpath up front, so a test can
// assert materialization behavior without a real backend.
type FakeSession struct {
	entries map[Datastore]map[string]DataNode
	closed  bool
}

// NewFakeSession returns an empty FakeSession.
func NewFakeSession() *FakeSession {
	return &FakeSession{entries: make(map[Datastore]map[string]DataNode)}
}

// Put registers node as existing at xpath in ds.
func (f *FakeSession) Put(ds Datastore, xpath string, node DataNode) {
	if f.entries[ds] == nil {
		f.entries[ds] = make(map[string]DataNode)
	}
	f.entries[ds][xpath] = node
}

func (f *FakeSession) GetData(_ context.Context, ds Datastore, xpath string, _ int) (DataNode, error) {
	return f.entries[ds][xpath], nil
}

func (f *FakeSession) Exists(_ context.Context, ds Datastore, xpath string) (bool, error) {
	_, ok := f.entries[ds][xpath]
	return ok, nil
}

func (f *FakeSession) Close() error {
	f.closed = true
	return nil
}

// Closed reports whether Close was called, for tests asserting session
// lifecycle discipline.
func (f *FakeSession) Closed() bool { return f.closed }
