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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/hireflow/internal/notification/internal/service"
	"github.com/ecodeclub/hireflow/internal/onboarding"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// OnboardingConsumer 消费入职事件。发送结果不论成败都回写入职邮件台账，
// 发送失败记failed，不影响触发它的业务操作。
type OnboardingConsumer struct {
	svc      service.Notifier
	obSvc    onboarding.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOnboardingConsumer(svc service.Notifier, obSvc onboarding.Service, q mq.MQ) (*OnboardingConsumer, error) {
	const groupID = "notification"
	consumer, err := q.Consumer(onboardingEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &OnboardingConsumer{
		svc:      svc,
		obSvc:    obSvc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *OnboardingConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if er := c.Consume(ctx); er != nil {
				c.logger.Error("消费入职事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *OnboardingConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt OnboardingEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	var emailType, subject, body string
	switch evt.Action {
	case "invited":
		emailType = onboarding.EmailInvitation
		subject = fmt.Sprintf("Welcome! Complete your onboarding for %s", evt.Position)
		body = fmt.Sprintf(
			"Dear %s,\n\nCongratulations on your new position. Please complete your onboarding forms here:\n\n%s\n\nThe link is valid for 30 days.",
			evt.Name, evt.OnboardingURL)
	case "submitted":
		emailType = onboarding.EmailSubmission
		subject = "Onboarding forms received"
		body = fmt.Sprintf(
			"Dear %s,\n\nWe have received your completed onboarding forms. Our HR team will review them and reach out if anything else is needed.",
			evt.Name)
	default:
		return nil
	}

	sendErr := c.svc.Notify(ctx, evt.Email, subject, body)
	log := onboarding.EmailLog{
		DistrictID:  evt.DistrictID,
		CandidateID: evt.CandidateID,
		EmailType:   emailType,
		Recipient:   evt.Email,
		Subject:     subject,
		Sent:        sendErr == nil,
	}
	if sendErr != nil {
		log.ErrorMessage = sendErr.Error()
		c.logger.Error("发送入职邮件失败", elog.FieldErr(sendErr),
			elog.Int64("cid", evt.CandidateID))
	}
	if er := c.obSvc.LogEmail(ctx, log); er != nil {
		c.logger.Error("回写入职邮件台账失败", elog.FieldErr(er),
			elog.Int64("cid", evt.CandidateID))
	}
	return nil
}
