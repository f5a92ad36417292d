//go:build js && wasm

// Command editor-wasm is loaded by the host page and exposes startEditor.
//
//	const editor = startEditor("canvas")
//	editor.addRectangle()
//
// Every call returns its own handle; nothing is stored globally.
package main

import (
	"canvas-editor/editor"
	"canvas-editor/surface/fabric"
	"syscall/js"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	if level, err := logrus.ParseLevel(js.Global().Get("EDITOR_LOG_LEVEL").String()); err == nil {
		logrus.SetLevel(level)
	}

	start := js.FuncOf(startEditor)
	js.Global().Set("startEditor", start)
	logrus.Info("editor module loaded")

	select {}
}

func startEditor(this js.Value, args []js.Value) any {
	if len(args) == 0 || args[0].Type() != js.TypeString {
		return jsError("startEditor: mount id is required")
	}
	mountID := args[0].String()

	backend, err := fabric.NewBackend()
	if err != nil {
		return jsError(err.Error())
	}
	ed, err := editor.New(backend, mountID, editor.WithLogger(logrus.WithField("component", "editor")))
	if err != nil {
		return jsError(err.Error())
	}

	return handle(ed)
}

// handle builds the JavaScript object handed back to the caller.
func handle(ed editor.Editor) js.Value {
	h := js.Global().Get("Object").New()
	h.Set("mountId", ed.Surface().ID())
	h.Set("addRectangle", js.FuncOf(func(this js.Value, args []js.Value) any {
		obj, err := ed.AddRectangle()
		if err != nil {
			return jsError(err.Error())
		}
		return obj.ID()
	}))
	h.Set("objectCount", js.FuncOf(func(this js.Value, args []js.Value) any {
		return len(ed.Surface().Objects())
	}))
	return h
}

// jsError is returned instead of thrown; a panic inside a callback would
// stop the Go runtime. bootstrap.js rethrows it on the JavaScript side.
func jsError(msg string) js.Value {
	return js.Global().Get("Error").New(msg)
}
