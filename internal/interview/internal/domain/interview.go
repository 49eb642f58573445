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

// Status 面试状态。
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
	StatusNoShow    Status = "No Show"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Interview 一场面试，归属一个申请和一个面试轮次。
type Interview struct {
	ID            int64
	DistrictID    int64
	ApplicationID int64
	StageID       int64
	// StageNumber 轮次编号，冗余自轮次定义，完成时用于推进申请进度
	StageNumber int

	Date     string
	Time     string
	Location string
	// Virtual 线上面试，排期时生成不可猜测的会议链接
	Virtual     bool
	MeetingLink string

	Status   Status
	Feedback string
	// Rating 面试评分，1到5，0表示未评分
	Rating int8

	Ctime int64
	Utime int64
}

func (i Interview) IsValid() bool {
	return i.DistrictID != 0 && i.ApplicationID != 0 &&
		i.StageID != 0 && i.Date != ""
}

// RatingValid 评分要么缺省要么落在[1,5]。
func (i Interview) RatingValid() bool {
	return i.Rating == 0 || (i.Rating >= 1 && i.Rating <= 5)
}
