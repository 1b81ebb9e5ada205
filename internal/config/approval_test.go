package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovalConfigDefaultsWhenFileAbsent(t *testing.T) {
	t.Chdir(t.TempDir())

	holder, err := NewApprovalConfigHolder()
	require.NoError(t, err)
	assert.Equal(t, []string{"L0456", "L0120"}, holder.Get().HCPCSCodes)
}

func TestApprovalConfigDefaultsWhenKeyMissing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "approval.yml"), []byte("unrelated: {}\n"), 0o644))
	t.Chdir(dir)

	holder, err := NewApprovalConfigHolder()
	require.NoError(t, err)
	assert.Equal(t, []string{"L0456", "L0120"}, holder.Get().HCPCSCodes)
}

func TestApprovalConfigReadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfg := "approval:\n  hcpcsCodes:\n    - l1906\n    - L0456\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "approval.yml"), []byte(cfg), 0o644))
	t.Chdir(dir)

	holder, err := NewApprovalConfigHolder()
	require.NoError(t, err)
	assert.Equal(t, []string{"L1906", "L0456"}, holder.Get().HCPCSCodes)
}

func TestStaticApprovalHolderNormalizesCodes(t *testing.T) {
	holder := NewStaticApprovalConfigHolder(" l0456 ", "l0120")
	assert.Equal(t, []string{"L0456", "L0120"}, holder.Get().HCPCSCodes)
}

func TestStaticApprovalHolderEmptyFallsBackToDefaults(t *testing.T) {
	holder := NewStaticApprovalConfigHolder()
	assert.Equal(t, DefaultApprovalConfig().HCPCSCodes, holder.Get().HCPCSCodes)
}
