package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"teamcity-notifier/internal/model"
)

const finishedPayload = `{
  "eventKind": "BUILD_FINISHED",
  "payload": {
    "id": 42,
    "buildTypeId": "Backend_Build",
    "number": "17",
    "status": "SUCCESS",
    "buildType": {"id": "Backend_Build", "name": "Build", "projectName": "Backend"},
    "webUrl": "https://tc.example.com/build/42"
  }
}`

func TestRunRender_Card(t *testing.T) {
	var buf bytes.Buffer
	if err := runRender(context.Background(), &buf, []byte(finishedPayload), false); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Project", "Backend", "#17", "View in TeamCity"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := runRender(context.Background(), &buf, []byte(finishedPayload), true); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	var got struct {
		Kind      string     `json:"event_kind"`
		Formatter string     `json:"formatter"`
		Card      model.Card `json:"card"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got.Kind != "BUILD_FINISHED" {
		t.Errorf("event_kind = %q", got.Kind)
	}
	if got.Formatter != "specialized" {
		t.Errorf("formatter = %q", got.Formatter)
	}
	if got.Card.Title == "" {
		t.Error("card title is empty")
	}
}

func TestRunRender_InvalidJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := runRender(context.Background(), &buf, []byte("{not json"), false); err == nil {
		t.Fatal("expected error for invalid payload")
	}
}

func TestReadPayload_Stdin(t *testing.T) {
	got, err := readPayload(strings.NewReader(finishedPayload), "-")
	if err != nil {
		t.Fatalf("readPayload() error = %v", err)
	}
	if string(got) != finishedPayload {
		t.Error("stdin payload not returned verbatim")
	}
}

func TestRenderCmd_Stdin(t *testing.T) {
	cmd := newRenderCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(finishedPayload))
	cmd.SetArgs([]string{"-", "--json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), `"formatter": "specialized"`) {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRenderCard(t *testing.T) {
	card := model.Card{Title: "Hello", Color: 0x3498DB, Footer: "TeamCity"}
	card.AddField("A", "1", true)
	card.AddField("B", "2", true)
	card.AddField("Long", "body", false)

	out := renderCard(card)
	for _, want := range []string{"Hello", "A", "1", "B", "2", "Long", "body", "TeamCity"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderCard() missing %q:\n%s", want, out)
		}
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor(0x27AE60); got != "#27AE60" {
		t.Errorf("hexColor() = %q", got)
	}
}
