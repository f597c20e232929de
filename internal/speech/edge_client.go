package speech

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	edgeTrustedToken = "6A5AA1D4EAFF4E9FB37E23D68491D6F4"
	edgeVoicesURL    = "https://speech.platform.bing.com/consumer/speech/synthesize/" +
		"readaloud/voices/list?trustedclienttoken=" + edgeTrustedToken
	edgeSynthURL = "wss://speech.platform.bing.com/consumer/speech/synthesize/" +
		"readaloud/edge/v1?TrustedClientToken=" + edgeTrustedToken

	edgeOutputFormat = "audio-24khz-48kbitrate-mono-mp3"

	// cap on the silence between two stream frames
	edgeReadTimeout = 30 * time.Second
)

// EdgeClient talks to the Microsoft Edge read-aloud service: a plain HTTP
// call for the voice list and a websocket session per synthesis request.
type EdgeClient struct {
	http     *http.Client
	dialer   *websocket.Dialer
	synthURL string
}

func NewEdgeClient() *EdgeClient {
	return &EdgeClient{
		http:     &http.Client{Timeout: 30 * time.Second},
		dialer:   websocket.DefaultDialer,
		synthURL: edgeSynthURL,
	}
}

func (c *EdgeClient) ListVoices(ctx context.Context) ([]Voice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, edgeVoicesURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("voice list request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("voice list error: %s", body)
	}

	var voices []Voice
	if err := json.Unmarshal(body, &voices); err != nil {
		return nil, fmt.Errorf("decode voice list: %w", err)
	}
	return voices, nil
}

// Synthesize renders text with the given voice short-name and returns the
// mp3 bytes. The service streams audio as binary frames carrying a
// Path:audio header; a turn.end text frame closes the stream.
func (c *EdgeClient) Synthesize(ctx context.Context, voice, text string) ([]byte, error) {
	conn, _, err := c.dialer.DialContext(ctx, c.synthURL, http.Header{
		"Origin": {"chrome-extension://jdiccldimpdaibmpdkjnbmckianbfold"},
	})
	if err != nil {
		return nil, fmt.Errorf("tts dial: %w", err)
	}
	defer conn.Close()

	// a canceled context must unblock the read loop below
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	reqID := strings.ReplaceAll(uuid.NewString(), "-", "")
	stamp := time.Now().UTC().Format("Mon Jan 02 2006 15:04:05 GMT+0000")

	config := fmt.Sprintf(
		"X-Timestamp:%s\r\nContent-Type:application/json; charset=utf-8\r\nPath:speech.config\r\n\r\n"+
			`{"context":{"synthesis":{"audio":{"metadataoptions":`+
			`{"sentenceBoundaryEnabled":"false","wordBoundaryEnabled":"false"},`+
			`"outputFormat":"%s"}}}}`,
		stamp, edgeOutputFormat,
	)
	if err := conn.WriteMessage(websocket.TextMessage, []byte(config)); err != nil {
		return nil, fmt.Errorf("tts config: %w", err)
	}

	ssml := fmt.Sprintf(
		"X-RequestId:%s\r\nContent-Type:application/ssml+xml\r\nX-Timestamp:%s\r\nPath:ssml\r\n\r\n"+
			"<speak version='1.0' xmlns='http://www.w3.org/2001/10/synthesis' xml:lang='en-US'>"+
			"<voice name='%s'>%s</voice></speak>",
		reqID, stamp, voice, escapeSSML(text),
	)
	if err := conn.WriteMessage(websocket.TextMessage, []byte(ssml)); err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}

	var audio []byte
	for {
		conn.SetReadDeadline(time.Now().Add(edgeReadTimeout))
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("tts stream: %w", ctx.Err())
			}
			return nil, fmt.Errorf("tts stream: %w", err)
		}
		switch msgType {
		case websocket.TextMessage:
			if strings.Contains(string(data), "Path:turn.end") {
				if len(audio) == 0 {
					return nil, fmt.Errorf("tts produced no audio for voice %q", voice)
				}
				return audio, nil
			}
		case websocket.BinaryMessage:
			if len(data) < 2 {
				continue
			}
			headerLen := int(binary.BigEndian.Uint16(data[:2]))
			if len(data) < 2+headerLen {
				continue
			}
			header := string(data[2 : 2+headerLen])
			if strings.Contains(header, "Path:audio") {
				audio = append(audio, data[2+headerLen:]...)
			}
		}
	}
}

func escapeSSML(text string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return r.Replace(text)
}
