// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ReadYAML reads metadata from YAML, preserving the order of
// mapping keys at every level. Nested mappings become *Data
// and sequences become []any.
func ReadYAML(r io.Reader) (*Data, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return &Data{}, nil
		}
		return nil, err
	}
	nd := &doc
	if nd.Kind == yaml.DocumentNode {
		if len(nd.Content) == 0 {
			return &Data{}, nil
		}
		nd = nd.Content[0]
	}
	v, err := fromNode(nd)
	if err != nil {
		return nil, err
	}
	md, ok := v.(*Data)
	if !ok {
		return nil, fmt.Errorf("metadata.ReadYAML: top level is not a mapping (line %d)", nd.Line)
	}
	return md, nil
}

// OpenYAML reads metadata from the given YAML file.
func OpenYAML(filename string) (*Data, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadYAML(bufio.NewReader(fp))
}

// WriteYAML writes the metadata as YAML, in key order.
func WriteYAML(w io.Writer, md *Data) error {
	nd, err := toNode(md)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(nd); err != nil {
		return err
	}
	return enc.Close()
}

// SaveYAML writes the metadata to the given YAML file.
func SaveYAML(filename string, md *Data) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := WriteYAML(bw, md); err != nil {
		return err
	}
	return bw.Flush()
}

func fromNode(nd *yaml.Node) (any, error) {
	switch nd.Kind {
	case yaml.MappingNode:
		md := &Data{}
		for i := 0; i+1 < len(nd.Content); i += 2 {
			var key string
			if err := nd.Content[i].Decode(&key); err != nil {
				return nil, err
			}
			v, err := fromNode(nd.Content[i+1])
			if err != nil {
				return nil, err
			}
			md.Set(key, v)
		}
		return md, nil
	case yaml.SequenceNode:
		sl := make([]any, 0, len(nd.Content))
		for _, c := range nd.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			sl = append(sl, v)
		}
		return sl, nil
	case yaml.AliasNode:
		return fromNode(nd.Alias)
	}
	var v any
	if err := nd.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func toNode(v any) (*yaml.Node, error) {
	if md, ok := AsMapping(v); ok {
		nd := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, k := range md.Keys {
			kn := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
			vn, err := toNode(md.Values[i])
			if err != nil {
				return nil, err
			}
			nd.Content = append(nd.Content, kn, vn)
		}
		return nd, nil
	}
	if sl, ok := v.([]any); ok {
		nd := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range sl {
			en, err := toNode(e)
			if err != nil {
				return nil, err
			}
			nd.Content = append(nd.Content, en)
		}
		return nd, nil
	}
	nd := &yaml.Node{}
	if err := nd.Encode(v); err != nil {
		return nil, err
	}
	return nd, nil
}
