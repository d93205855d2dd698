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
	"fmt"
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/scenic/core"
)

var (
	stringsMUS    = ord.NewSliceSer[string](ord.String)
	attributesMUS = ord.NewMapSer[string, string](ord.String, ord.String)
	breakdownMUS  = ord.NewMapSer[string, float64](ord.String, raw.Float64)

	// RawDescriptionMUS serializes a core.RawDescription.
	RawDescriptionMUS mus.Serializer[core.RawDescription] = rawDescriptionMUS{}

	descriptionsMUS = ord.NewSliceSer[core.RawDescription](RawDescriptionMUS)

	// CacheEntryMUS serializes a CacheEntry.
	CacheEntryMUS mus.Serializer[CacheEntry] = cacheEntryMUS{}
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	v, _, err := varint.Uint64.Unmarshal(data)
	return core.ID(v), err
}

// MarshalCacheEntry serializes a CacheEntry to bytes.
func MarshalCacheEntry(entry *CacheEntry) []byte {
	buf := make([]byte, CacheEntryMUS.Size(*entry))
	CacheEntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalCacheEntry deserializes a CacheEntry from bytes.
func UnmarshalCacheEntry(data []byte) (*CacheEntry, error) {
	entry, _, err := CacheEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &entry, nil
}

type rawDescriptionMUS struct{}

func (rawDescriptionMUS) Marshal(v core.RawDescription, bs []byte) (n int) {
	n = ord.String.Marshal(v.Content, bs)
	n += ord.String.Marshal(string(v.Type), bs[n:])
	n += raw.Float64.Marshal(v.ConfidenceScore, bs[n:])
	n += raw.Float64.Marshal(v.PriorityScore, bs[n:])
	n += ord.String.Marshal(v.SourceEngine, bs[n:])
	n += stringsMUS.Marshal(v.EntitiesMentioned, bs[n:])
	n += varint.Int.Marshal(v.Position, bs[n:])
	n += varint.Int.Marshal(v.EndPosition, bs[n:])
	n += ord.String.Marshal(v.ChapterID, bs[n:])
	n += breakdownMUS.Marshal(v.Metadata.ScoreBreakdown, bs[n:])
	n += attributesMUS.Marshal(v.Metadata.Attributes, bs[n:])
	n += raw.Float64.Marshal(v.ConsensusRatio, bs[n:])
	n += ord.String.Marshal(string(v.QualityIndicator), bs[n:])
	n += stringsMUS.Marshal(v.ContributingEngines, bs[n:])
	return
}

func (rawDescriptionMUS) Unmarshal(bs []byte) (v core.RawDescription, n int, err error) {
	var (
		m   int
		str string
	)
	if v.Content, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	str, m, err = ord.String.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return
	}
	v.Type = core.DescriptionType(str)
	v.ConfidenceScore, m, err = raw.Float64.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return
	}
	v.PriorityScore, m, err = raw.Float64.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return
	}
	v.SourceEngine, m, err = ord.String.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return
	}
	v.EntitiesMentioned, m, err = stringsMUS.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return
	}
	v.Position, m, err = varint.Int.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return
	}
	v.EndPosition, m, err = varint.Int.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return
	}
	v.ChapterID, m, err = ord.String.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return
	}
	v.Metadata.ScoreBreakdown, m, err = breakdownMUS.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return
	}
	v.Metadata.Attributes, m, err = attributesMUS.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return
	}
	v.ConsensusRatio, m, err = raw.Float64.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return
	}
	str, m, err = ord.String.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return
	}
	v.QualityIndicator = core.QualityLevel(str)
	v.ContributingEngines, m, err = stringsMUS.Unmarshal(bs[n:])
	n += m
	return
}

func (rawDescriptionMUS) Size(v core.RawDescription) (size int) {
	size = ord.String.Size(v.Content)
	size += ord.String.Size(string(v.Type))
	size += raw.Float64.Size(v.ConfidenceScore)
	size += raw.Float64.Size(v.PriorityScore)
	size += ord.String.Size(v.SourceEngine)
	size += stringsMUS.Size(v.EntitiesMentioned)
	size += varint.Int.Size(v.Position)
	size += varint.Int.Size(v.EndPosition)
	size += ord.String.Size(v.ChapterID)
	size += breakdownMUS.Size(v.Metadata.ScoreBreakdown)
	size += attributesMUS.Size(v.Metadata.Attributes)
	size += raw.Float64.Size(v.ConsensusRatio)
	size += ord.String.Size(string(v.QualityIndicator))
	return size + stringsMUS.Size(v.ContributingEngines)
}

func (s rawDescriptionMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type cacheEntryMUS struct{}

func (cacheEntryMUS) Marshal(v CacheEntry, bs []byte) (n int) {
	n = ord.String.Marshal(v.Engine, bs)
	n += varint.Int64.Marshal(v.StoredAt.UnixMicro(), bs[n:])
	n += descriptionsMUS.Marshal(v.Descriptions, bs[n:])
	return
}

func (cacheEntryMUS) Unmarshal(bs []byte) (v CacheEntry, n int, err error) {
	var (
		m      int
		micros int64
	)
	if v.Engine, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	micros, m, err = varint.Int64.Unmarshal(bs[n:])
	n += m
	if err != nil {
		return
	}
	v.StoredAt = time.UnixMicro(micros).UTC()
	v.Descriptions, m, err = descriptionsMUS.Unmarshal(bs[n:])
	n += m
	return
}

func (cacheEntryMUS) Size(v CacheEntry) (size int) {
	size = ord.String.Size(v.Engine)
	size += varint.Int64.Size(v.StoredAt.UnixMicro())
	return size + descriptionsMUS.Size(v.Descriptions)
}

func (s cacheEntryMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}
