package exectool

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
)

func TestNewWithBinary(t *testing.T) {
	cli := New(WithBinary("/opt/introfp"))
	if cli.binary != "/opt/introfp" {
		t.Fatalf("expected binary override to be applied, got %q", cli.binary)
	}
}

func TestFingerprint_ParsesLines(t *testing.T) {
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "EXECTOOL_HELPER_MODE=success")
		return cmd
	}
	t.Cleanup(func() { commandContext = original })

	cli := New()
	stream, err := cli.Fingerprint(context.Background(), "episode.mkv")
	if err != nil {
		t.Fatalf("Fingerprint returned error: %v", err)
	}
	want := []uint32{10, 20, 4294967295}
	if len(stream) != len(want) {
		t.Fatalf("stream length = %d, want %d", len(stream), len(want))
	}
	for i, v := range want {
		if stream[i] != v {
			t.Errorf("stream[%d] = %d, want %d", i, stream[i], v)
		}
	}
}

func TestFingerprint_SkipsUnparsableLines(t *testing.T) {
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "EXECTOOL_HELPER_MODE=noisy")
		return cmd
	}
	t.Cleanup(func() { commandContext = original })

	cli := New()
	stream, err := cli.Fingerprint(context.Background(), "episode.mkv")
	if err != nil {
		t.Fatalf("Fingerprint returned error: %v", err)
	}
	if len(stream) != 1 || stream[0] != 7 {
		t.Fatalf("stream = %v, want [7]", stream)
	}
}

func TestFingerprint_ExitFailurePropagates(t *testing.T) {
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "EXECTOOL_HELPER_MODE=failure")
		return cmd
	}
	t.Cleanup(func() { commandContext = original })

	cli := New()
	if _, err := cli.Fingerprint(context.Background(), "episode.mkv"); err == nil {
		t.Fatal("expected error when the helper process exits nonzero")
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	switch os.Getenv("EXECTOOL_HELPER_MODE") {
	case "success":
		fmt.Println("10")
		fmt.Println("20")
		fmt.Println("4294967295")
		os.Exit(0)
	case "noisy":
		fmt.Println("not-a-number")
		fmt.Println("")
		fmt.Println("7")
		os.Exit(0)
	case "failure":
		fmt.Fprintln(os.Stderr, "fingerprint failed")
		os.Exit(1)
	default:
		os.Exit(0)
	}
}
