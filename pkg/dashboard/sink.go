/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dashboard

import (
	"context"
	"sync"

	"github.com/carverauto/chargeradar/pkg/poller"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewModelMsg carries a scheduler publication into the program loop.
type ViewModelMsg struct {
	ViewModel poller.ViewModel
}

// MessageSender is the part of *tea.Program the sink uses.
type MessageSender interface {
	Send(msg tea.Msg)
}

// ProgramSink implements poller.Sink for a tea.Program. Publish only records
// the newest view model; a single forwarder delivers it, so a busy program
// never blocks the scheduler and intermediate publications are coalesced.
type ProgramSink struct {
	mu      sync.Mutex
	latest  *poller.ViewModel
	pending chan struct{}
}

var _ poller.Sink = (*ProgramSink)(nil)

// NewProgramSink returns a sink with no program attached.
func NewProgramSink() *ProgramSink {
	return &ProgramSink{pending: make(chan struct{}, 1)}
}

// Publish implements poller.Sink.
func (s *ProgramSink) Publish(vm poller.ViewModel) {
	s.mu.Lock()
	s.latest = &vm
	s.mu.Unlock()

	select {
	case s.pending <- struct{}{}:
	default:
	}
}

// Forward delivers publications to p until ctx is done.
func (s *ProgramSink) Forward(ctx context.Context, p MessageSender) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.pending:
			if vm := s.take(); vm != nil {
				p.Send(ViewModelMsg{ViewModel: *vm})
			}
		}
	}
}

func (s *ProgramSink) take() *poller.ViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	vm := s.latest
	s.latest = nil

	return vm
}
