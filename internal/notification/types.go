// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package notification

import (
	"context"

	"github.com/ecodeclub/hireflow/internal/notification/internal/event"
)

type Module struct {
	AppConsumer        *ApplicationConsumer
	InterviewConsumer  *InterviewConsumer
	OfferConsumer      *OfferConsumer
	OnboardingConsumer *OnboardingConsumer
}

// Start 拉起全部消费循环，随ctx退出
func (m *Module) Start(ctx context.Context) {
	m.AppConsumer.Start(ctx)
	m.InterviewConsumer.Start(ctx)
	m.OfferConsumer.Start(ctx)
	m.OnboardingConsumer.Start(ctx)
}

type ApplicationConsumer = event.ApplicationConsumer

type InterviewConsumer = event.InterviewConsumer

type OfferConsumer = event.OfferConsumer

type OnboardingConsumer = event.OnboardingConsumer
