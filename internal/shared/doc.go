// Package shared holds code used across packages that belongs to no single layer.
//
// The testutil subpackage provides the project CSV fixture and a buffered slog
// handler for asserting on log output:
//
//	func TestSomething(t *testing.T) {
//		logger, handler := testutil.NewTestLogger(t)
//		path := testutil.WriteProjectsCSV(t, t.TempDir())
//		// ...
//		testutil.AssertLogContains(t, handler, slog.LevelInfo, "Reports computed")
//	}
package shared
