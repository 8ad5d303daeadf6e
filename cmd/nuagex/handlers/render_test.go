package handlers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xlab-si/nuagex/internal/nuagex"
	"github.com/xlab-si/nuagex/internal/reconcile"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	origOut := stdout
	origTTY := isInteractiveTTY
	t.Cleanup(func() {
		stdout = origOut
		isInteractiveTTY = origTTY
	})
	isInteractiveTTY = func() bool { return false }
	buf := &bytes.Buffer{}
	stdout = buf
	return buf
}

func TestPrintReportChanged(t *testing.T) {
	buf := captureOutput(t)
	result := runningResult("lab1")

	require.NoError(t, printReport(result.Report(), "", false))

	out := buf.String()
	assert.Contains(t, out, "result: changed")
	assert.Contains(t, out, "id: id-lab1")
	assert.Contains(t, out, "web: https://203.0.113.7:8443 (csproot / hunter2, org csp)")
	assert.Contains(t, out, "amqp: 203.0.113.7:5672 (jmsuser@system / hunter2)")
}

func TestPrintReportNoChanges(t *testing.T) {
	buf := captureOutput(t)

	require.NoError(t, printReport(reconcile.Report{}, "", false))
	assert.Contains(t, buf.String(), "result: no changes")
}

func TestPrintReportDryRun(t *testing.T) {
	buf := captureOutput(t)

	require.NoError(t, printReport(reconcile.Report{Changed: true}, "", true))
	assert.Contains(t, buf.String(), "changed (dry-run)")
}

func TestPrintReportPendingLabHidesEndpoints(t *testing.T) {
	buf := captureOutput(t)
	result := reconcile.Result{
		Changed: true,
		Lab:     &nuagex.Lab{ID: "id-1", Name: "lab1", Status: nuagex.StatusPending},
	}

	require.NoError(t, printReport(result.Report(), "", false))

	out := buf.String()
	assert.NotContains(t, out, "web:")
	assert.NotContains(t, out, "amqp:")
}

func TestPrintStatusAbsent(t *testing.T) {
	buf := captureOutput(t)

	require.NoError(t, printStatus("lab1", reconcile.Report{}, ""))
	assert.Contains(t, buf.String(), "lab: lab1 (absent)")
}
