package devcontainer

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/Cyclone1070/cope/internal/pathutil"
)

// DefaultConfigPath returns root/.devcontainer/devcontainer.json.
func DefaultConfigPath(root string) string {
	return pathutil.Join(pathutil.Join(root, MarkerDir), ConfigFile)
}

// ContainerID builds the identifier the Dev Containers extension expects for
// project root and configuration file chosen. The format is undocumented;
// the non-default form looks like JSON but must match byte for byte: field
// order, no whitespace, and chosen repeated three times.
func ContainerID(root, chosen string) string {
	root = strings.ToValidUTF8(root, "\uFFFD")
	chosen = strings.ToValidUTF8(chosen, "\uFFFD")

	// Same identifier the devcontainer CLI uses for the default config.
	if chosen == DefaultConfigPath(root) {
		return root
	}

	return fmt.Sprintf(
		`{"hostPath":%s,"localDocker":false,"settings":{"context":"desktop-linux"},"configFile":{"$mid":1,"fsPath":%s,"external":"file://%s","path":%s,"scheme":"file"}}`,
		strconv.Quote(root), strconv.Quote(chosen), chosen, strconv.Quote(chosen),
	)
}

// Hex encodes b as lowercase hex, two digits per byte.
func Hex(b []byte) string {
	return hex.EncodeToString(b)
}

// WorkspaceFolder returns the in-container folder for root: the record's
// workspaceFolder if set, else /workspaces/<last segment of root>.
func WorkspaceFolder(rec Record, root string) string {
	if rec.WorkspaceFolder != "" {
		return rec.WorkspaceFolder
	}
	return "/workspaces/" + pathutil.Base(root)
}
