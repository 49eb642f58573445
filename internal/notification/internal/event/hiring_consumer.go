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
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// ApplicationConsumer 消费申请提交和阶段变更事件，给申请人发确认邮件。
type ApplicationConsumer struct {
	svc       service.Notifier
	submitted mq.Consumer
	changed   mq.Consumer
	logger    *elog.Component
}

func NewApplicationConsumer(svc service.Notifier, q mq.MQ) (*ApplicationConsumer, error) {
	const groupID = "notification"
	submitted, err := q.Consumer(applicationSubmittedEvents, groupID)
	if err != nil {
		return nil, err
	}
	changed, err := q.Consumer(stageChangedEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &ApplicationConsumer{
		svc:       svc,
		submitted: submitted,
		changed:   changed,
		logger:    elog.DefaultLogger,
	}, nil
}

func (c *ApplicationConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if er := c.consumeSubmitted(ctx); er != nil {
				c.logger.Error("消费申请提交事件失败", elog.FieldErr(er))
			}
		}
	}()
	go func() {
		for {
			if er := c.consumeStageChanged(ctx); er != nil {
				c.logger.Error("消费阶段变更事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *ApplicationConsumer) consumeSubmitted(ctx context.Context) error {
	msg, err := c.submitted.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt SubmittedEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	body := fmt.Sprintf(
		"Dear %s,\n\nWe have received your application and our team will review it shortly.\n\nThank you for your interest.",
		evt.ApplicantName)
	if er := c.svc.Notify(ctx, evt.Email, "Application received", body); er != nil {
		c.logger.Error("发送申请确认邮件失败", elog.FieldErr(er),
			elog.Int64("aid", evt.ApplicationID))
	}
	return nil
}

func (c *ApplicationConsumer) consumeStageChanged(ctx context.Context) error {
	msg, err := c.changed.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt StageChangedEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	// 内部流转阶段不打扰申请人，拒绝单独措辞
	var subject, body string
	if evt.ToStage == "Rejected" {
		subject = "Application update"
		body = fmt.Sprintf(
			"Dear %s,\n\nThank you for your interest. After careful consideration we will not be moving forward with your application at this time.",
			evt.ApplicantName)
	} else {
		subject = "Your application has moved forward"
		body = fmt.Sprintf(
			"Dear %s,\n\nYour application has progressed to the %q stage.",
			evt.ApplicantName, evt.ToStage)
	}
	if er := c.svc.Notify(ctx, evt.Email, subject, body); er != nil {
		c.logger.Error("发送阶段变更邮件失败", elog.FieldErr(er),
			elog.Int64("aid", evt.ApplicationID))
	}
	return nil
}

// InterviewConsumer 消费面试排期事件，给申请人发面试通知。
type InterviewConsumer struct {
	svc      service.Notifier
	consumer mq.Consumer
	logger   *elog.Component
}

func NewInterviewConsumer(svc service.Notifier, q mq.MQ) (*InterviewConsumer, error) {
	const groupID = "notification"
	consumer, err := q.Consumer(interviewScheduledEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &InterviewConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *InterviewConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if er := c.Consume(ctx); er != nil {
				c.logger.Error("消费面试排期事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *InterviewConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt InterviewScheduledEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	// 完成事件只做内部流转，不外发邮件
	if evt.Action != "scheduled" {
		return nil
	}
	where := evt.Location
	if evt.MeetingLink != "" {
		where = "Online: " + evt.MeetingLink
	}
	body := fmt.Sprintf(
		"Dear %s,\n\nYour %s interview has been scheduled.\n\nDate: %s\nTime: %s\nLocation: %s",
		evt.ApplicantName, evt.StageName, evt.Date, evt.Time, where)
	if er := c.svc.Notify(ctx, evt.Email, "Interview scheduled", body); er != nil {
		c.logger.Error("发送面试通知邮件失败", elog.FieldErr(er),
			elog.Int64("iid", evt.InterviewID))
	}
	return nil
}

// OfferConsumer 消费Offer事件。created时把渲染好的信函原文发给候选人。
type OfferConsumer struct {
	svc      service.Notifier
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOfferConsumer(svc service.Notifier, q mq.MQ) (*OfferConsumer, error) {
	const groupID = "notification"
	consumer, err := q.Consumer(offerStatusEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &OfferConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *OfferConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if er := c.Consume(ctx); er != nil {
				c.logger.Error("消费Offer事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *OfferConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt OfferEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	var subject, body string
	switch evt.Action {
	case "created":
		subject = fmt.Sprintf("Offer of employment: %s", evt.PositionTitle)
		body = evt.Letter
	case "accepted":
		subject = "Offer accepted"
		body = fmt.Sprintf(
			"Dear %s,\n\nWe have recorded your acceptance. Welcome aboard! Onboarding instructions will follow.",
			evt.ApplicantName)
	case "declined":
		subject = "Offer declined"
		body = fmt.Sprintf(
			"Dear %s,\n\nWe have recorded that you declined the offer. We wish you all the best.",
			evt.ApplicantName)
	default:
		// expired等动作不外发
		return nil
	}
	if er := c.svc.Notify(ctx, evt.Email, subject, body); er != nil {
		c.logger.Error("发送Offer邮件失败", elog.FieldErr(er),
			elog.Int64("oid", evt.OfferID))
	}
	return nil
}
