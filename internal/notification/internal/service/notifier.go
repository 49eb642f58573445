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

package service

import (
	"context"

	"github.com/ecodeclub/hireflow/internal/email"
)

// Notifier 把渲染好的纯文本邮件交给邮件通道。
// 发送失败由调用方决定怎么记账，这里不吞错误。
type Notifier interface {
	Notify(ctx context.Context, to, subject, body string) error
}

type notifier struct {
	email     email.Service
	fromAlias string
}

func NewNotifier(svc email.Service, fromAlias string) Notifier {
	return &notifier{
		email:     svc,
		fromAlias: fromAlias,
	}
}

func (n *notifier) Notify(ctx context.Context, to, subject, body string) error {
	return n.email.SendMail(ctx, email.Mail{
		From:    n.fromAlias,
		To:      to,
		Subject: subject,
		Body:    []byte(body),
	})
}
