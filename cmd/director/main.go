package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/vedantwpatil/autodirector/internal/capture"
	"github.com/vedantwpatil/autodirector/internal/diagnostics"
	"github.com/vedantwpatil/autodirector/internal/director"
	"github.com/vedantwpatil/autodirector/internal/recording"
)

const targetFPS = 60

func main() {
	var (
		recorder    *recording.Recorder
		isRecording = false
		recordMutex = &sync.Mutex{}
		baseName    string
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		for sig := range sigChan {
			fmt.Printf("\nReceived signal: %v\n", sig)

			recordMutex.Lock()
			if isRecording {
				fmt.Println("Stopping screen recording...")
				if err := recorder.Stop(); err != nil {
					log.Printf("failed to stop recording: %v", err)
				}
				isRecording = false
				recordMutex.Unlock()
				continue
			}
			recordMutex.Unlock()
			os.Exit(0)
		}
	}()

	for {
		fmt.Println("\nCommands:")
		fmt.Println("1. Start recording")
		fmt.Println("2. Stop recording and generate camera track")
		fmt.Println("3. Exit")
		fmt.Print("Choose an option: ")

		var choice int
		fmt.Scanln(&choice)

		switch choice {
		case 1:
			recordMutex.Lock()
			if isRecording {
				fmt.Println("Already recording")
				recordMutex.Unlock()
				continue
			}

			fmt.Print("Enter the name to save the recording under (no extension): ")
			fmt.Scanln(&baseName)

			recorder = recording.NewRecorder(targetFPS)
			screenW, screenH := primaryDisplaySize()
			if err := recorder.Start("output", baseName, screenW, screenH); err != nil {
				fmt.Printf("failed to start recording: %v\n", err)
				recordMutex.Unlock()
				continue
			}
			isRecording = true
			recordMutex.Unlock()

			fmt.Println("Recording started. Press Ctrl+C or choose option 2 to stop.")

		case 2:
			recordMutex.Lock()
			if !isRecording {
				fmt.Println("Not currently recording")
				recordMutex.Unlock()
				continue
			}
			session := recorder.Session()
			outputPath := recorder.OutputPath()
			if err := recorder.Stop(); err != nil {
				fmt.Printf("failed to stop recording: %v\n", err)
				recordMutex.Unlock()
				continue
			}
			isRecording = false
			recordMutex.Unlock()

			meta, err := capture.ReadMetadata(outputPath)
			if err != nil {
				fmt.Printf("failed to read recorded video metadata: %v\n", err)
				continue
			}

			input := capture.AttachMetadata(session.Drain(meta.Duration, meta.FrameRate), meta)

			logger := diagnostics.NewLogger()
			timeline := director.GenerateWithDiagnostics(input, director.DefaultSettings(), logger)

			fmt.Printf("Generated %d camera segment(s), %d cursor segment(s), %d keystroke overlay(s)\n",
				len(timeline.CameraTrack.Segments), len(timeline.CursorTrack.Segments), len(timeline.KeystrokeTrack.Segments))

		case 3:
			recordMutex.Lock()
			if isRecording {
				if err := recorder.Stop(); err != nil {
					log.Printf("failed to stop recording on exit: %v", err)
				}
			}
			recordMutex.Unlock()
			fmt.Println("Exiting...")
			os.Exit(0)

		default:
			fmt.Println("Invalid option")
		}
	}
}
