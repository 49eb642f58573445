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

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOffer_EffectiveStatus(t *testing.T) {
	t.Parallel()
	now := time.Now()
	testCases := []struct {
		name  string
		offer Offer
		want  Status
	}{
		{
			name:  "Pending未到截止日",
			offer: Offer{Status: StatusPending, ExpirationDate: now.AddDate(0, 0, 1).UnixMilli()},
			want:  StatusPending,
		},
		{
			name:  "Pending过了截止日",
			offer: Offer{Status: StatusPending, ExpirationDate: now.AddDate(0, 0, -1).UnixMilli()},
			want:  StatusExpired,
		},
		{
			name: "已接受的不受截止日影响",
			offer: Offer{
				Status:         StatusAccepted,
				ExpirationDate: now.AddDate(0, 0, -1).UnixMilli(),
			},
			want: StatusAccepted,
		},
		{
			name: "已拒绝的不受截止日影响",
			offer: Offer{
				Status:         StatusDeclined,
				ExpirationDate: now.AddDate(0, 0, -1).UnixMilli(),
			},
			want: StatusDeclined,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.offer.EffectiveStatus(now))
			assert.Equal(t, tc.want == StatusExpired && tc.offer.Status == StatusPending,
				tc.offer.IsExpired(now))
		})
	}
}
