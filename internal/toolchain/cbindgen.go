package toolchain

import "context"

// Generates the crate's public C header into the workspace include
// directory and returns the header path.
//
// The header is target-independent, so it is generated once per run and
// shared by every bundle slice. cbindgen picks up an optional
// cbindgen.toml from the crate root on its own.
func (t *Toolchain) GenerateHeader(ctx context.Context) (string, error) {
	header := t.ws.HeaderPath(t.crate.HeaderFile())

	err := t.invoke(ctx, "cbindgen",
		t.crate.Dir(),
		"--lang", "c",
		"--output", header,
	)
	if err != nil {
		return "", err
	}
	return header, nil
}
