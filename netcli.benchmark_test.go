package netcli

import (
	"context"
	"testing"
)

func BenchmarkParseRecords_CiscoIOSShowVersion(b *testing.B) {
	p := New()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.ParseRecords(ctx, "cisco_ios", "show_version", ciscoIOSShowVersionOutput)
	}
}

func BenchmarkParseCommandRecords_AbbreviatedCommand(b *testing.B) {
	p := New()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.ParseCommandRecords(ctx, "cisco_ios", "sh ver", ciscoIOSShowVersionOutput)
	}
}

func BenchmarkParseJSON_CiscoIOSShowVersion(b *testing.B) {
	p := New()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.ParseJSON(ctx, "cisco_ios", "show_version", ciscoIOSShowVersionOutput)
	}
}
