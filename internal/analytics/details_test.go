// Copyright (c) 2025-2026 Callscope Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package analytics

// In this file: aggregation over a canned details job result page.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope/callscope/internal/fixtures"
	"github.com/callscope/callscope/internal/genesys"
)

func TestAggregation_detailsPayload(t *testing.T) {
	res := fixtures.LoadPtr[genesys.DetailsJobResults](fixtures.TestDetailsResults)
	require.Len(t, res.Conversations, 3)

	t.Run("queue counts", func(t *testing.T) {
		counts := CountByQueue(res.Conversations, []string{fixtures.TestQueueBilling, fixtures.TestQueueSales})
		assert.Equal(t, map[string]int{
			fixtures.TestQueueBilling: 2,
			fixtures.TestQueueSales:   1,
		}, counts)
	})

	t.Run("wrap-up breakdown", func(t *testing.T) {
		rep := WrapUpBreakdown(res.Conversations)
		assert.Equal(t, 3, rep.Total)
		assert.Equal(t, 3, rep.Wrapped)
		assert.Equal(t, 100, rep.Coverage())

		require.Len(t, rep.Stats, 2)
		assert.Equal(t, "BILLING", rep.Stats[0].Code)
		assert.Equal(t, 2, rep.Stats[0].N)
		assert.Equal(t, 67, rep.Stats[0].Percentage)
		assert.Equal(t, map[string]int{"voice": 2}, rep.Stats[0].MediaTypes)
		assert.Equal(t, "SALES", rep.Stats[1].Code)
	})
}
