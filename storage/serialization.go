// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/poiesic/embedkit/core"
)

// MarshalWordEntry serializes a WordEntry to bytes.
func MarshalWordEntry(entry *core.WordEntry) []byte {
	buf := make([]byte, core.WordEntryMUS.Size(*entry))
	core.WordEntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalWordEntry deserializes a WordEntry from bytes.
func UnmarshalWordEntry(data []byte) (*core.WordEntry, error) {
	entry, _, err := core.WordEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// MarshalIndexSnapshot serializes an IndexSnapshot to bytes.
func MarshalIndexSnapshot(snapshot *core.IndexSnapshot) []byte {
	buf := make([]byte, core.IndexSnapshotMUS.Size(*snapshot))
	core.IndexSnapshotMUS.Marshal(*snapshot, buf)
	return buf
}

// UnmarshalIndexSnapshot deserializes an IndexSnapshot from bytes.
func UnmarshalIndexSnapshot(data []byte) (*core.IndexSnapshot, error) {
	snapshot, _, err := core.IndexSnapshotMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
