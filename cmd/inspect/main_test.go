package main

import (
	"bytes"
	"testing"
	"time"
	"voice-relay/repositories"

	"github.com/stretchr/testify/require"
)

func TestRender_Prints_One_Row_Per_Entry(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	render(&out, []repositories.Entry{
		{Key: "user:1001", Kind: repositories.KindUser, Owner: "1001", At: time.Now(), Detail: "Ada (@ada)"},
		{Key: "other:1", Kind: repositories.KindRaw, Detail: "Size: 3 bytes"},
	})

	req.Contains(out.String(), "user:1001")
	req.Contains(out.String(), "Ada (@ada)")
	req.Contains(out.String(), "--")
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", "/var/lib/voice-relay")

	cfg, err := LoadConfig()

	req.NoError(err)
	req.Equal("/var/lib/voice-relay", cfg.BadgerFilepath)
	req.True(cfg.Colours)
}
