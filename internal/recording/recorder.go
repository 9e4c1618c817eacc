// Package recording owns the ffmpeg screen-capture session lifecycle and
// hands off to a tracking.Session for the duration of the recording.
package recording

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vedantwpatil/autodirector/internal/tracking"
)

// Recorder drives one ffmpeg screen-capture process and the live event
// tracking session running alongside it.
type Recorder struct {
	targetFPS  int
	outputPath string

	mu          sync.Mutex
	isRecording bool
	isDone      bool
	startTime   time.Time
	stopChan    chan struct{}
	doneChan    chan struct{}

	session *tracking.Session
}

// NewRecorder creates a Recorder that will capture at targetFPS.
func NewRecorder(targetFPS int) *Recorder {
	return &Recorder{
		targetFPS: targetFPS,
		stopChan:  make(chan struct{}),
		doneChan:  make(chan struct{}),
	}
}

// Start begins screen capture to outputDir/baseName.mp4 and starts the
// accompanying tracking.Session against screenW/screenH.
func (r *Recorder) Start(outputDir, baseName string, screenW, screenH float64) error {
	r.mu.Lock()
	if r.isRecording {
		r.mu.Unlock()
		return fmt.Errorf("recording already in progress")
	}
	r.mu.Unlock()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	r.mu.Lock()
	r.outputPath = filepath.Join(outputDir, baseName+".mp4")
	r.isRecording = true
	r.isDone = false
	r.startTime = time.Now()
	r.session = tracking.NewSession(screenW, screenH)
	r.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		r.captureScreen()
		cancel()
	}()

	go r.session.Start(ctx, r.targetFPS)

	return nil
}

func (r *Recorder) captureScreen() {
	defer close(r.doneChan)

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		index, err := findScreenDeviceIndex()
		if err != nil {
			log.Printf("unable to locate the main device screen: %v", err)
			return
		}
		cmd = exec.Command("ffmpeg",
			"-f", "avfoundation",
			"-framerate", fmt.Sprintf("%d", r.targetFPS),
			"-i", index+":none",
			"-c:v", "libx264",
			"-pix_fmt", "yuv420p",
			"-preset", "ultrafast",
			"-y",
			r.outputPath)
	case "linux":
		cmd = exec.Command("ffmpeg",
			"-f", "x11grab",
			"-framerate", fmt.Sprintf("%d", r.targetFPS),
			"-i", ":0.0",
			"-c:v", "libx264",
			"-pix_fmt", "yuv420p",
			"-y",
			r.outputPath)
	case "windows":
		cmd = exec.Command("ffmpeg",
			"-f", "gdigrab",
			"-framerate", fmt.Sprintf("%d", r.targetFPS),
			"-i", "desktop",
			"-c:v", "libx264",
			"-pix_fmt", "yuv420p",
			"-y",
			r.outputPath)
	default:
		log.Printf("unsupported operating system: %s", runtime.GOOS)
		return
	}

	stdinPipe, err := cmd.StdinPipe()
	if err != nil {
		log.Printf("failed to get stdin pipe: %v", err)
		return
	}
	defer stdinPipe.Close()
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		log.Printf("failed to start ffmpeg: %v", err)
		return
	}

	go func() {
		<-r.stopChan
		stdinPipe.Write([]byte("q\n"))
		stdinPipe.Close()
	}()

	if err := cmd.Wait(); err != nil {
		log.Printf("ffmpeg process finished with status: %v", err)
	}

	r.mu.Lock()
	r.isRecording = false
	r.isDone = true
	r.mu.Unlock()
}

// Stop signals ffmpeg and the tracking session to halt, and waits for the
// capture process to exit.
func (r *Recorder) Stop() error {
	r.mu.Lock()
	if !r.isRecording {
		r.mu.Unlock()
		return fmt.Errorf("no recording in progress")
	}
	r.mu.Unlock()

	close(r.stopChan)
	r.session.Stop()
	<-r.doneChan

	r.mu.Lock()
	r.stopChan = make(chan struct{})
	r.doneChan = make(chan struct{})
	r.mu.Unlock()

	return nil
}

// Session returns the tracking session accumulating this recording's
// events.
func (r *Recorder) Session() *tracking.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}

// OutputPath returns the path ffmpeg is writing (or wrote) to.
func (r *Recorder) OutputPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outputPath
}

func findScreenDeviceIndex() (string, error) {
	cmd := exec.Command("ffmpeg", "-f", "avfoundation", "-list_devices", "true", "-i", "")
	outputBytes, err := cmd.CombinedOutput()
	if err != nil && len(outputBytes) == 0 {
		return "", fmt.Errorf("failed to run ffmpeg list_devices command: %w", err)
	}

	inVideoDevices := false
	videoDeviceIndex := 0
	for _, line := range strings.Split(string(outputBytes), "\n") {
		if strings.Contains(line, "AVFoundation video devices:") {
			inVideoDevices = true
			continue
		}
		if strings.Contains(line, "AVFoundation audio devices:") {
			break
		}
		if !inVideoDevices {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if strings.Contains(trimmed, "Capture screen 0") {
			return strconv.Itoa(videoDeviceIndex), nil
		}
		if strings.Contains(trimmed, "]") && len(trimmed) > 0 {
			videoDeviceIndex++
		}
	}

	return "", fmt.Errorf("could not find 'Capture screen 0' in ffmpeg device list")
}
