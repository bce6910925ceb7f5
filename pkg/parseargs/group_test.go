// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseargs

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExpandGroup(t *testing.T) {
	ix := mustCompile(t, Schema{
		"all":     {Type: Boolean, Short: "a"},
		"file":    {Type: String, Short: "f"},
		"verbose": {Type: Boolean, Short: "v"},
		"z":       {Type: Boolean},
		"o":       {Type: String},
	})

	tests := []struct {
		name    string
		cluster string
		lenient bool
		want    []string
		wantErr error
	}{
		{name: "booleans", cluster: "av", want: []string{"-a", "-v"}},
		{name: "repeated", cluster: "vvv", want: []string{"-v", "-v", "-v"}},
		{name: "string last", cluster: "avf", want: []string{"-a", "-v", "-f"}},
		{name: "string mid group lenient", cluster: "afvx", lenient: true, want: []string{"-a", "-fvx"}},
		{name: "unknown lenient", cluster: "axv", lenient: true, want: []string{"-a", "-x", "-v"}},
		{name: "unknown strict", cluster: "axv", wantErr: ErrUnknownOption},
		{name: "long name without alias strict", cluster: "az", want: []string{"-a", "-z"}},
		{name: "string long name without alias last", cluster: "ao", want: []string{"-a", "-o"}},
		{name: "string long name without alias mid group strict", cluster: "aoz", wantErr: ErrMissingArgument},
		{name: "invalid utf-8 lenient", cluster: "a\xffv", lenient: true, want: []string{"-a", "-\xff", "-v"}},
		{name: "string mid group strict", cluster: "afv", wantErr: ErrMissingArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &parser{ix: ix, strict: !tt.lenient, res: newResult()}
			got, err := p.expandGroup(tt.cluster)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expandGroup(%q) error = %v, want %v", tt.cluster, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("expandGroup(%q) error = %v", tt.cluster, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("expandGroup(%q) mismatch (-want +got):\n%s", tt.cluster, diff)
			}
		})
	}
}

func TestCursorSplice(t *testing.T) {
	c := newCursor([]string{"-rf", "p"})
	first := c.next()
	c.splice(first.index, []string{"-r", "-f"})

	var got []string
	for _, a := range c.drain() {
		got = append(got, a.text)
		if a.text != "p" && (a.index != 0 || !a.fromGroup) {
			t.Errorf("spliced %q index=%d fromGroup=%v, want index 0 from group", a.text, a.index, a.fromGroup)
		}
	}
	if diff := cmp.Diff([]string{"-r", "-f", "p"}, got); diff != "" {
		t.Errorf("cursor order mismatch (-want +got):\n%s", diff)
	}
	if _, ok := c.peek(); ok {
		t.Error("peek() on drained cursor returned ok")
	}
}
