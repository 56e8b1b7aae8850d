// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package tracefile

import (
	"strings"
	"testing"

	"github.com/gviegas/vkreplay/driverapi"
	"github.com/gviegas/vkreplay/packet"
)

const sample = `[
	{
		"entry": "vkCreateInstance",
		"args": {
			"Info": {
				"Application": {"ApplicationName": "sample", "APIVersion": 1},
				"EnabledLayerNames": ["VK_LAYER_KHRONOS_validation"],
				"EnabledExtensionNames": ["VK_KHR_surface"]
			},
			"RecordedInstance": 1
		},
		"recorded_result": 0
	},
	{
		"entry": "vkDestroyInstance",
		"args": {"Instance": 1},
		"recorded_result": 0
	}
]`

func TestDecode(t *testing.T) {
	src, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	p, ok := src.Next()
	if !ok {
		t.Fatal("Next: expected a packet")
	}
	if p.Entry != packet.EntryCreateInstance {
		t.Fatalf("Entry = %v, want EntryCreateInstance", p.Entry)
	}
	args, ok := p.Args.(packet.CreateInstanceArgs)
	if !ok {
		t.Fatalf("Args type = %T, want packet.CreateInstanceArgs", p.Args)
	}
	if args.RecordedInstance != driverapi.Handle(1) {
		t.Errorf("RecordedInstance = %v, want 1", args.RecordedInstance)
	}
	if args.Info.Application.ApplicationName != "sample" {
		t.Errorf("Application.ApplicationName = %q, want %q", args.Info.Application.ApplicationName, "sample")
	}
	if len(args.Info.EnabledLayerNames) != 1 || args.Info.EnabledLayerNames[0] != "VK_LAYER_KHRONOS_validation" {
		t.Errorf("EnabledLayerNames = %v", args.Info.EnabledLayerNames)
	}

	p, ok = src.Next()
	if !ok {
		t.Fatal("Next: expected a second packet")
	}
	if p.Entry != packet.EntryDestroyInstance {
		t.Fatalf("Entry = %v, want EntryDestroyInstance", p.Entry)
	}
	dargs := p.Args.(packet.DestroyInstanceArgs)
	if dargs.Instance != driverapi.Handle(1) {
		t.Errorf("Instance = %v, want 1", dargs.Instance)
	}

	if _, ok = src.Next(); ok {
		t.Error("Next: expected exhaustion after two packets")
	}
}

func TestDecodeUnknownEntry(t *testing.T) {
	_, err := Decode(strings.NewReader(`[{"entry": "vkBogus", "args": {}}]`))
	if err == nil {
		t.Fatal("Decode: expected an error for an unknown entry name")
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`not json`))
	if err == nil {
		t.Fatal("Decode: expected an error for malformed JSON")
	}
}
