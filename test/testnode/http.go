// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package testnode

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func HTTPGet(t *testing.T, url string) ([]byte, int) {
	res, err := http.Get(url) //#nosec G107
	if err != nil {
		t.Fatal(err)
	}
	return readBody(t, res)
}

// HTTPPost posts obj encoded as json.
func HTTPPost(t *testing.T, url string, obj any) ([]byte, int) {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatal(err)
	}
	res, err := http.Post(url, "application/json", bytes.NewReader(data)) //#nosec G107
	if err != nil {
		t.Fatal(err)
	}
	return readBody(t, res)
}

func readBody(t *testing.T, res *http.Response) ([]byte, int) {
	r, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	return r, res.StatusCode
}
