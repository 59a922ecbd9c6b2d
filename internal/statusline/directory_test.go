package statusline

import "testing"

func TestResolveDirectory(t *testing.T) {
	tests := []struct {
		name string
		ws   *WorkspaceInfo
		want string
	}{
		{"nil workspace", nil, "unknown"},
		{"empty workspace", &WorkspaceInfo{}, "unknown"},
		{"subdirectory of project", &WorkspaceInfo{CurrentDir: "/a/b/c", ProjectDir: "/a/b"}, "c"},
		{"nested subdirectory", &WorkspaceInfo{CurrentDir: "/a/b/c/d", ProjectDir: "/a/b"}, "c/d"},
		{"current equals project", &WorkspaceInfo{CurrentDir: "/a/b", ProjectDir: "/a/b"}, "b"},
		{"outside project", &WorkspaceInfo{CurrentDir: "/x/y", ProjectDir: "/a/b"}, "y"},
		// String prefix, not path prefix: /a/bc starts with /a/b.
		{"sibling sharing prefix", &WorkspaceInfo{CurrentDir: "/a/bc", ProjectDir: "/a/b"}, "c"},
		{"project only", &WorkspaceInfo{ProjectDir: "/repo/app"}, "app"},
		{"project beats cwd", &WorkspaceInfo{ProjectDir: "/repo/app", Cwd: "/tmp/x"}, "app"},
		{"cwd beats current", &WorkspaceInfo{Cwd: "/tmp/x", CurrentDir: "/home/me"}, "x"},
		{"current only", &WorkspaceInfo{CurrentDir: "/home/me"}, "me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDirectory(tt.ws); got != tt.want {
				t.Errorf("ResolveDirectory(%+v) = %q, want %q", tt.ws, got, tt.want)
			}
		})
	}
}
