// Command blendpilot runs the scene assistant pipeline against an in-memory
// demo scene. The main goroutine plays the host's safe-mutation thread;
// generated code is printed by the demo executor instead of mutating a real
// scene.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	assistant "github.com/blendpilot/blendpilot"
	"github.com/blendpilot/blendpilot/src/host"
	"github.com/blendpilot/blendpilot/src/models"
	"github.com/blendpilot/blendpilot/src/scene"
)

func main() {
	_ = godotenv.Load()

	modeFlag := flag.String("mode", "code", "code or qa")
	modelFlag := flag.String("model", models.SentinelOpenAI, "model identifier (chatgpt, claude, gemini, or a local model)")
	promptFlag := flag.String("prompt", "", "task or question")
	listFlag := flag.Bool("list", false, "list selectable models and exit")
	infoFlag := flag.Bool("scene-info", false, "print demo scene statistics and exit")
	flag.Parse()

	if *listFlag {
		for _, name := range models.Catalog(context.Background()) {
			fmt.Println(name)
		}
		return
	}

	demoScene := (&scene.Static{}).
		Add(scene.StaticObject{ObjName: "Cube", ObjKind: scene.KindMesh, Size: scene.Vec3{1, 1, 1}, Material: "Material"}).
		Add(scene.StaticObject{ObjName: "Light", ObjKind: scene.KindLight, Loc: scene.Vec3{4.08, 1.01, 5.9}, Size: scene.Vec3{1, 1, 1}}).
		Add(scene.StaticObject{ObjName: "Camera", ObjKind: scene.KindCamera, Loc: scene.Vec3{7.36, -6.93, 4.96}, Size: scene.Vec3{1, 1, 1}})

	loop := host.NewLoop()
	executor := host.ExecutorFunc(func(code string) error {
		fmt.Printf("--- executing generated code ---\n%s\n--------------------------------\n", code)
		return nil
	})

	a, err := assistant.New(assistant.Options{
		Scene:     demoScene,
		Scheduler: loop,
		Executor:  executor,
	})
	if err != nil {
		log.Fatalf("assistant init: %v", err)
	}

	if *infoFlag {
		fmt.Println(a.SceneInfo())
		return
	}

	if *promptFlag == "" {
		log.Fatal("missing -prompt")
	}

	mode := models.ModeCode
	if *modeFlag == "qa" {
		mode = models.ModeQA
	}

	if err := a.Submit(mode, *modelFlag, *promptFlag); err != nil {
		log.Fatalf("submit: %v", err)
	}

	// Cooperative host loop: tick until the worker lands its result and the
	// handoff queue drains.
	done := make(chan struct{})
	go func() {
		a.Wait()
		close(done)
	}()

	for {
		loop.Tick()
		select {
		case <-done:
			loop.Drain()
			fmt.Printf("status: %s\n", a.Sink().Status())
			if resp := a.Sink().Response(); resp != "" {
				fmt.Printf("answer: %s\n", resp)
			}
			return
		default:
			time.Sleep(50 * time.Millisecond)
		}
	}
}
