// Package testutil provides test doubles for swman components.
//
// Key components:
//   - FakeRunner: scripted runner.Runner that records every invocation
//   - MockManager: testify mock of the manager capability
//   - PluginFS: afero MemMapFs seeded with plugin markers
//
// Tests never touch the real package managers: adapters get a FakeRunner,
// and only pkg/runner tests spawn real processes.
package testutil
